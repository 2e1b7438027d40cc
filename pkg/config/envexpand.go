package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables referenced as {{.NAME}} in raw
// config bytes. Template syntax is used instead of $NAME so literal dollar
// signs survive untouched: masking regexes, passwords, and shell fragments in
// runbook config all carry them. A name the environment does not define
// expands to the empty string; validation rejects required fields left empty.
//
// Malformed template syntax returns the input unchanged, letting the YAML
// parser report its own error for the offending line.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		// Values may themselves contain '='; split on the first one only.
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, env); err != nil {
		return data
	}
	return out.Bytes()
}
