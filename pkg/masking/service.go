package masking

import (
	"log/slog"

	"github.com/vigilops/vigil/pkg/adapter"
	"github.com/vigilops/vigil/pkg/config"
)

// RedactedNotice replaces context content that could not be safely masked.
// Context masking is fail-closed: unmaskable data never reaches storage or
// the model.
const RedactedNotice = "[REDACTED: masking failed, content withheld]"

// alertPatternGroup is applied to inbound alert payloads before they are
// persisted.
const alertPatternGroup = "basic"

var _ adapter.ContextMasker = (*Service)(nil)

// Service masks adapter context and alert payloads. All patterns compile
// and resolve at construction; masking itself is map lookups and regex
// sweeps, safe for concurrent use.
type Service struct {
	logger        *slog.Logger
	codeMaskers   map[string]Masker
	patterns      map[string]*CompiledPattern
	patternGroups map[string][]string
	adapterSets   map[string]*patternSet
	alertSet      *patternSet
}

// NewService builds the masking service for the given adapter configs.
// Adapters without a masking section, or with masking disabled, pass their
// context through untouched.
func NewService(adapterConfigs map[string]*config.AdapterConfig, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	builtin := config.GetBuiltinConfig()
	s := &Service{
		logger:        logger.With("component", "masking"),
		codeMaskers:   registerCodeMaskers(),
		patternGroups: builtin.PatternGroups,
	}
	s.patterns = compilePatterns(builtin.MaskingPatterns, s.logger)

	for name := range builtin.CodeMaskers {
		if _, ok := s.codeMaskers[name]; !ok {
			s.logger.Warn("builtin code masker has no registered implementation", "masker", name)
		}
	}

	s.adapterSets = make(map[string]*patternSet, len(adapterConfigs))
	for name, cfg := range adapterConfigs {
		if cfg == nil || cfg.Masking == nil || !cfg.Masking.Enabled {
			continue
		}
		s.adapterSets[name] = s.resolve(name, cfg.Masking)
	}
	s.alertSet = s.resolve("alert", &config.MaskingConfig{PatternGroups: []string{alertPatternGroup}})

	s.logger.Info("masking service initialized",
		"compiled_patterns", len(s.patterns),
		"code_maskers", len(s.codeMaskers),
		"masked_adapters", len(s.adapterSets))
	return s
}

func registerCodeMaskers() map[string]Masker {
	maskers := []Masker{
		&KubernetesSecretMasker{},
	}
	byName := make(map[string]Masker, len(maskers))
	for _, m := range maskers {
		byName[m.Name()] = m
	}
	return byName
}

// MaskContextData masks every string reachable in one adapter's context
// payload. The input is returned untouched when the adapter has no masking
// configured. Failures are fail-closed: a value that cannot be processed is
// replaced with RedactedNotice rather than passed through unmasked.
func (s *Service) MaskContextData(adapterName string, data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	set, ok := s.adapterSets[adapterName]
	if !ok || set.empty() {
		return data
	}
	out := make(map[string]any, len(data))
	for key, value := range data {
		out[key] = s.maskValue(value, set)
	}
	return out
}

// maskValue walks a context value and masks every string leaf. Non-string
// scalars pass through unchanged. The walk copies containers instead of
// mutating them so callers keep their originals.
func (s *Service) maskValue(value any, set *patternSet) any {
	switch v := value.(type) {
	case string:
		return s.maskString(v, set)
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, inner := range v {
			out[key] = s.maskValue(inner, set)
		}
		return out
	case []map[string]any:
		out := make([]map[string]any, len(v))
		for i, m := range v {
			masked := make(map[string]any, len(m))
			for key, inner := range m {
				masked[key] = s.maskValue(inner, set)
			}
			out[i] = masked
		}
		return out
	case []string:
		out := make([]string, len(v))
		for i, inner := range v {
			out[i] = s.maskString(inner, set)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, inner := range v {
			out[i] = s.maskValue(inner, set)
		}
		return out
	default:
		return value
	}
}

func (s *Service) maskString(content string, set *patternSet) string {
	masked, err := s.apply(content, set)
	if err != nil {
		s.logger.Error("context masking failed, withholding content", "error", err)
		return RedactedNotice
	}
	return masked
}

// MaskAlertData masks an inbound alert payload with the basic pattern
// group. Unlike context masking this path is fail-open: alerts must keep
// flowing even when masking misbehaves, and the payload is what operators
// debug from.
func (s *Service) MaskAlertData(data string) string {
	if data == "" {
		return data
	}
	masked, err := s.apply(data, s.alertSet)
	if err != nil {
		s.logger.Error("alert masking failed, passing payload through", "error", err)
		return data
	}
	return masked
}

// apply runs code maskers before the regex sweep so structural masking sees
// the data in its original shape.
func (s *Service) apply(content string, set *patternSet) (string, error) {
	masked := content
	for _, name := range set.codeMaskers {
		masker, ok := s.codeMaskers[name]
		if !ok {
			continue
		}
		if masker.AppliesTo(masked) {
			masked = masker.Mask(masked)
		}
	}
	for _, cp := range set.patterns {
		masked = cp.Regex.ReplaceAllString(masked, cp.Replacement)
	}
	return masked, nil
}
