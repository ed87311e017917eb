package evaluate

import "strings"

// Config controls deterministic answer normalization.
type Config struct {
	CaseSensitive  bool
	TrimWhitespace bool
}

// DefaultConfig matches answers case-insensitively with surrounding
// whitespace trimmed.
func DefaultConfig() Config {
	return Config{CaseSensitive: false, TrimWhitespace: true}
}

// Normalize applies the configured normalization to an answer string.
func (c Config) Normalize(value string) string {
	if c.TrimWhitespace {
		value = strings.TrimSpace(value)
	}
	if !c.CaseSensitive {
		value = strings.ToLower(value)
	}
	return value
}

// Matches reports whether raw equals any accepted answer after
// normalization.
func (c Config) Matches(raw string, accepted []string) bool {
	normalized := c.Normalize(raw)
	for _, candidate := range accepted {
		if c.Normalize(candidate) == normalized {
			return true
		}
	}
	return false
}
