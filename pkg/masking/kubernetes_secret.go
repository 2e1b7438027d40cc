package masking

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// SecretValueMask replaces every value held by a Kubernetes Secret.
const SecretValueMask = "[MASKED_SECRET_DATA]"

var (
	yamlSecretKind = regexp.MustCompile(`(?m)^\s*kind:\s*Secret(List)?\s*$`)
	jsonSecretKind = regexp.MustCompile(`"kind"\s*:\s*"Secret(List)?"`)
)

var _ Masker = (*KubernetesSecretMasker)(nil)

// KubernetesSecretMasker blanks data and stringData values in Kubernetes
// Secret manifests while leaving other resource kinds, ConfigMaps included,
// untouched. It understands single documents, multi-document YAML streams,
// SecretList and List envelopes, and Secret copies embedded in annotations
// such as kubectl.kubernetes.io/last-applied-configuration.
type KubernetesSecretMasker struct{}

func (m *KubernetesSecretMasker) Name() string { return "kubernetes_secret" }

// AppliesTo looks for a Secret kind declaration in YAML or JSON form.
func (m *KubernetesSecretMasker) AppliesTo(data string) bool {
	if !strings.Contains(data, "Secret") {
		return false
	}
	return jsonSecretKind.MatchString(data) || yamlSecretKind.MatchString(data)
}

// Mask replaces secret values in the manifest. Input that fails to parse is
// returned unchanged; losing context on a parse error would be worse than
// the regex sweep that follows code maskers.
func (m *KubernetesSecretMasker) Mask(data string) string {
	trimmed := strings.TrimSpace(data)
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return m.maskJSON(data)
	}
	return m.maskYAML(data)
}

func (m *KubernetesSecretMasker) maskJSON(data string) string {
	var parsed any
	if err := json.Unmarshal([]byte(data), &parsed); err != nil {
		return data
	}

	masked := false
	switch doc := parsed.(type) {
	case map[string]any:
		masked = scrubResource(doc)
	case []any:
		for _, entry := range doc {
			if resource, ok := entry.(map[string]any); ok && scrubResource(resource) {
				masked = true
			}
		}
	}
	if !masked {
		return data
	}

	out, err := json.MarshalIndent(parsed, "", "  ")
	if err != nil {
		return data
	}
	result := string(out)
	if strings.HasSuffix(data, "\n") {
		result += "\n"
	}
	return result
}

func (m *KubernetesSecretMasker) maskYAML(data string) string {
	docs, err := decodeYAMLStream(data)
	if err != nil {
		return data
	}

	masked := false
	for _, doc := range docs {
		if resource, ok := doc.(map[string]any); ok && scrubResource(resource) {
			masked = true
		}
	}
	if !masked {
		return data
	}

	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	for _, doc := range docs {
		if err := encoder.Encode(doc); err != nil {
			return data
		}
	}
	if err := encoder.Close(); err != nil {
		return data
	}

	// The encoder always emits a trailing newline; keep whatever the
	// original had.
	result := strings.TrimRight(buf.String(), "\n")
	if strings.HasSuffix(data, "\n") {
		result += "\n"
	}
	return result
}

// decodeYAMLStream decodes every document in a possibly multi-document
// stream. Non-mapping documents are kept so the stream re-encodes whole.
func decodeYAMLStream(data string) ([]any, error) {
	decoder := yaml.NewDecoder(strings.NewReader(data))
	var docs []any
	for {
		var doc any
		err := decoder.Decode(&doc)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		if doc == nil {
			continue
		}
		docs = append(docs, doc)
	}
}

// scrubResource masks all Secret content reachable from the resource and
// reports whether anything was masked. Items of a SecretList usually omit
// their own kind, so they are masked without inspection; items of a generic
// List carry one and are checked individually.
func scrubResource(resource map[string]any) bool {
	kind, _ := resource["kind"].(string)
	switch {
	case kind == "Secret":
		maskSecretData(resource)
		maskAnnotationSecrets(resource)
		return true
	case kind == "SecretList":
		items := listItems(resource)
		for _, item := range items {
			maskSecretData(item)
			maskAnnotationSecrets(item)
		}
		return len(items) > 0
	case strings.HasSuffix(kind, "List"):
		masked := false
		for _, item := range listItems(resource) {
			if scrubResource(item) {
				masked = true
			}
		}
		return masked
	}
	return false
}

func listItems(resource map[string]any) []map[string]any {
	raw, _ := resource["items"].([]any)
	items := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if item, ok := entry.(map[string]any); ok {
			items = append(items, item)
		}
	}
	return items
}

// maskSecretData blanks every value under data and stringData. Keys stay
// visible so operators can still tell what the Secret holds.
func maskSecretData(resource map[string]any) {
	for _, field := range []string{"data", "stringData"} {
		values, ok := resource[field].(map[string]any)
		if !ok {
			continue
		}
		for key := range values {
			values[key] = SecretValueMask
		}
	}
}

// maskAnnotationSecrets re-masks Secret copies embedded as JSON in
// annotation values. kubectl stores one under
// last-applied-configuration, which would otherwise leak the data the
// resource-level masking just removed.
func maskAnnotationSecrets(resource map[string]any) {
	metadata, ok := resource["metadata"].(map[string]any)
	if !ok {
		return
	}
	annotations, ok := metadata["annotations"].(map[string]any)
	if !ok {
		return
	}

	for key, value := range annotations {
		raw, ok := value.(string)
		if !ok || !strings.Contains(raw, "Secret") {
			continue
		}
		var embedded map[string]any
		if err := json.Unmarshal([]byte(raw), &embedded); err != nil {
			continue
		}
		if !scrubResource(embedded) {
			continue
		}
		remasked, err := json.Marshal(embedded)
		if err != nil {
			continue
		}
		annotations[key] = string(remasked)
	}
}
