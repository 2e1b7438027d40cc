// Package masking redacts credentials and other secret material from data
// flowing through the engine: adapter context before it is persisted or sent
// to the model, and inbound alert payloads before they are stored.
//
// Two masker kinds exist. Regex patterns handle flat textual secrets (API
// keys, passwords, tokens). Code maskers handle structured data where the
// sensitive part is positional rather than shaped, such as Kubernetes Secret
// manifests where every value under data/stringData must go.
package masking

// Masker is a code-based masker for structured data that regex patterns
// cannot handle reliably.
type Masker interface {
	// Name returns the registry identifier referenced from pattern groups.
	// Must match the key in config.GetBuiltinConfig().CodeMaskers.
	Name() string

	// AppliesTo reports whether the data looks like something this masker
	// understands. It is a cheap pre-filter run before the full Mask pass.
	AppliesTo(data string) bool

	// Mask returns the data with sensitive fields replaced. Maskers must
	// return the input unchanged when they cannot parse it; dropping data
	// on a parse error would lose context the analysis needs.
	Mask(data string) string
}
