// Package variant resolves component style variants into Tailwind class lists.
//
// A component declares its base tokens and one Axis per variant dimension.
// Resolution concatenates base, axis and override tokens in that order and
// merges the result so that later tokens win within a CSS property group.
package variant

import (
	"errors"
	"fmt"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
)

// ErrInvalidVariant reports a variant value outside its axis enumeration.
var ErrInvalidVariant = errors.New("invalid variant value")

// Axis maps the values of one variant dimension to style tokens.
type Axis[V comparable] struct {
	// Name identifies the axis in errors, for example "size".
	Name string
	// Default is the value used when a caller leaves the axis unset.
	Default V
	// Values holds the tokens for each legal value.
	Values map[V][]string
}

// Tokens returns the tokens for v. Values missing from the table resolve to
// the default value's tokens.
func (a Axis[V]) Tokens(v V) []string {
	if tokens, ok := a.Values[v]; ok {
		return tokens
	}
	return a.Values[a.Default]
}

// Has reports whether v is part of the axis enumeration.
func (a Axis[V]) Has(v V) bool {
	_, ok := a.Values[v]
	return ok
}

// Flag is a boolean axis.
type Flag struct {
	On  []string
	Off []string
}

// Tokens returns the tokens for the flag state.
func (f Flag) Tokens(on bool) []string {
	if on {
		return f.On
	}
	return f.Off
}

// Parse looks up a value by its string form among candidates. The empty
// string selects def.
func Parse[V fmt.Stringer](axis string, raw string, def V, candidates ...V) (V, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	for _, candidate := range candidates {
		if candidate.String() == raw {
			return candidate, nil
		}
	}
	var zero V
	return zero, fmt.Errorf("%s %q: %w", axis, raw, ErrInvalidVariant)
}

// When returns tokens when cond holds and nil otherwise.
func When(cond bool, tokens ...string) []string {
	if !cond {
		return nil
	}
	return tokens
}

// Compose concatenates token groups in order.
func Compose(groups ...[]string) []string {
	size := 0
	for _, group := range groups {
		size += len(group)
	}
	out := make([]string, 0, size)
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}

// Resolve composes groups and merges them with the caller overrides last.
func Resolve(groups [][]string, overrides ...string) string {
	return CN(append(Compose(groups...), overrides...)...)
}

// CN merges class strings. Each part may hold several whitespace-separated
// classes. Exact duplicates keep their last position and conflicting
// utilities resolve in favour of the later one. Survivors keep input order.
func CN(parts ...string) string {
	fields := dedupe(Fields(parts...))
	if len(fields) == 0 {
		return ""
	}
	kept := make(map[string]struct{}, len(fields))
	for _, class := range strings.Fields(twmerge.Merge(strings.Join(fields, " "))) {
		kept[class] = struct{}{}
	}
	out := fields[:0]
	for _, class := range fields {
		if _, ok := kept[class]; ok {
			out = append(out, class)
		}
	}
	return strings.Join(out, " ")
}

// Fields splits class strings into individual classes.
func Fields(parts ...string) []string {
	var out []string
	for _, part := range parts {
		out = append(out, strings.Fields(part)...)
	}
	return out
}

func dedupe(fields []string) []string {
	last := make(map[string]int, len(fields))
	for i, field := range fields {
		last[field] = i
	}
	out := make([]string, 0, len(last))
	for i, field := range fields {
		if last[field] == i {
			out = append(out, field)
		}
	}
	return out
}
