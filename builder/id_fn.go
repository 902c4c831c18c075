package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node name from its graph index.
// It must be pure: the same idx always yields the same name.
type IDFn func(idx int) string

// DefaultIDFn returns "x" + decimal idx, e.g. 0→"x0", 42→"x42".
func DefaultIDFn(idx int) string {
	return "x" + strconv.Itoa(idx)
}

// SymbolNumberIDFn returns prefix + decimal index, e.g. "mu0", "mu1", ...
// The returned function panics if idx < 0.
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) Option {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// NamesIDFn uses names[idx] while it lasts and falls back to DefaultIDFn.
func NamesIDFn(names ...string) IDFn {
	own := append([]string(nil), names...)

	return func(idx int) string {
		if idx >= 0 && idx < len(own) {
			return own[idx]
		}
		return DefaultIDFn(idx)
	}
}
