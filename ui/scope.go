package ui

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/louisbranch/vtnds/internal/platform/id"
)

// Control kinds used as generated id prefixes.
const (
	KindCheckbox = "checkbox"
	KindSwitch   = "switch"
	KindInput    = "input"
	KindTextarea = "textarea"
)

type scopeKey struct{}

// scope issues ids and tracks once-per-document output for one render.
type scope struct {
	mu      sync.Mutex
	next    int
	emitted map[string]bool
}

// WithScope returns a context whose renders share one id sequence. Ids are
// issued in render order, so rendering the same tree in a fresh scope yields
// the same ids.
func WithScope(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, scopeKey{}, &scope{emitted: map[string]bool{}})
}

func scopeFrom(ctx context.Context) *scope {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(scopeKey{}).(*scope)
	return s
}

// ControlID returns supplied when it is set, or a generated id prefixed with
// kind. Within a scope the generated form is "<kind>-r<n>"; outside one it
// is "<kind>-" followed by a random 26 character suffix.
func ControlID(ctx context.Context, kind, supplied string) (string, error) {
	if supplied = strings.TrimSpace(supplied); supplied != "" {
		return supplied, nil
	}
	if s := scopeFrom(ctx); s != nil {
		s.mu.Lock()
		n := s.next
		s.next++
		s.mu.Unlock()
		return fmt.Sprintf("%s-r%d", kind, n), nil
	}
	generated, err := id.WithPrefix(kind)
	if err != nil {
		return "", fmt.Errorf("generate %s id: %w", kind, err)
	}
	return generated, nil
}

// claimOnce reports whether key has not yet been emitted in the scope of ctx
// and marks it emitted. Without a scope every call reports true.
func claimOnce(ctx context.Context, key string) bool {
	s := scopeFrom(ctx)
	if s == nil {
		return true
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.emitted[key] {
		return false
	}
	s.emitted[key] = true
	return true
}
