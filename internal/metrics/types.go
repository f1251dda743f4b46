package metrics

import (
	"fmt"
	"strings"
)

// Scope defines which part of the analysis a metric describes.
type Scope string

const (
	// ScopeWords indicates a metric computed over the token sequence.
	ScopeWords Scope = "words"
	// ScopeSentences indicates a metric computed over the raw passage.
	ScopeSentences Scope = "sentences"
)

// ParseScope parses a user-provided scope value. An empty value selects
// every scope and returns "".
func ParseScope(raw string) (Scope, error) {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "":
		return "", nil
	case string(ScopeWords), string(ScopeSentences):
		return Scope(s), nil
	default:
		return "", fmt.Errorf("unknown scope %q (supported: words, sentences)", raw)
	}
}

// ValueKind describes how to render a numeric metric value.
type ValueKind string

const (
	// KindInteger renders values as rounded integers.
	KindInteger ValueKind = "integer"
	// KindFloat renders values with fixed decimal precision.
	KindFloat ValueKind = "float"
)

// Value is a computed numeric metric value. The zero Value is
// unavailable.
type Value struct {
	Number    float64
	Available bool
}

// AvailableValue constructs an available metric value.
func AvailableValue(n float64) Value {
	return Value{
		Number:    n,
		Available: true,
	}
}

// Definition describes a metric and how to read it from a Record.
type Definition struct {
	ID          string
	Name        string
	Label       string
	Unit        string
	Description string
	Scope       Scope
	Kind        ValueKind
	Precision   int
	// Default metrics appear in the text report.
	Default bool
	Compute func(r Record) Value
}
