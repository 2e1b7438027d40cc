package masking

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/vigilops/vigil/pkg/config"
)

// CompiledPattern is a masking pattern whose regex was compiled once at
// service construction.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// patternSet is the resolved masker list for one data source. Code maskers
// run first so structural masking sees the original shape, then the regex
// patterns sweep whatever is left.
type patternSet struct {
	codeMaskers []string
	patterns    []*CompiledPattern
}

func (ps *patternSet) empty() bool {
	return len(ps.codeMaskers) == 0 && len(ps.patterns) == 0
}

func compilePattern(name string, def config.MaskingPattern) (*CompiledPattern, error) {
	re, err := regexp.Compile(def.Pattern)
	if err != nil {
		return nil, fmt.Errorf("compiling masking pattern %q: %w", name, err)
	}
	return &CompiledPattern{
		Name:        name,
		Regex:       re,
		Replacement: def.Replacement,
		Description: def.Description,
	}, nil
}

// compilePatterns compiles a pattern catalog. Invalid patterns are logged
// and skipped so one bad entry does not disable the rest.
func compilePatterns(defs map[string]config.MaskingPattern, logger *slog.Logger) map[string]*CompiledPattern {
	compiled := make(map[string]*CompiledPattern, len(defs))
	for name, def := range defs {
		cp, err := compilePattern(name, def)
		if err != nil {
			logger.Error("skipping invalid masking pattern", "pattern", name, "error", err)
			continue
		}
		compiled[name] = cp
	}
	return compiled
}

// resolve expands one masking config into a concrete pattern set. Group and
// pattern references are deduplicated; a name naming a registered code
// masker resolves to that masker, anything else to a compiled regex. Custom
// patterns compile here under synthetic "custom:{source}:{index}" names so
// they can never collide with builtin names.
//
// Configs are static after startup, so resolve runs once per source at
// construction and unknown references are warned about exactly once.
func (s *Service) resolve(source string, cfg *config.MaskingConfig) *patternSet {
	set := &patternSet{}
	seen := make(map[string]bool)

	add := func(name string) {
		if seen[name] {
			return
		}
		seen[name] = true
		if _, ok := s.codeMaskers[name]; ok {
			set.codeMaskers = append(set.codeMaskers, name)
			return
		}
		if cp, ok := s.patterns[name]; ok {
			set.patterns = append(set.patterns, cp)
			return
		}
		s.logger.Warn("masking config references unknown pattern",
			"source", source, "pattern", name)
	}

	for _, group := range cfg.PatternGroups {
		members, ok := s.patternGroups[group]
		if !ok {
			s.logger.Warn("masking config references unknown pattern group",
				"source", source, "group", group)
			continue
		}
		for _, name := range members {
			add(name)
		}
	}
	for _, name := range cfg.Patterns {
		add(name)
	}

	for i, def := range cfg.CustomPatterns {
		name := fmt.Sprintf("custom:%s:%d", source, i)
		cp, err := compilePattern(name, def)
		if err != nil {
			s.logger.Error("skipping invalid custom masking pattern",
				"source", source, "pattern", name, "error", err)
			continue
		}
		set.patterns = append(set.patterns, cp)
	}

	return set
}
