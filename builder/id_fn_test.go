// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/katalvlaran/wgraph/builder"
)

// TestIDFns checks representative outputs of every scheme.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   builder.IDFn
		idx  int
		want string
	}{
		{"Default", builder.DefaultIDFn, 12, "12"},
		{"Symbol/first", builder.SymbolIDFn, 0, "A"},
		{"Symbol/last", builder.SymbolIDFn, 25, "Z"},
		{"Alphanumeric", builder.AlphanumericIDFn, 36, "10"},
		{"Excel/Z", builder.ExcelColumnIDFn, 25, "Z"},
		{"Excel/AA", builder.ExcelColumnIDFn, 26, "AA"},
		{"Excel/AAA", builder.ExcelColumnIDFn, 702, "AAA"},
		{"Hex", builder.HexIDFn, 255, "ff"},
		{"SymbolNumber", builder.SymbolNumberIDFn("v"), 3, "v3"},
	}
	for _, tc := range tests {
		if got := tc.fn(tc.idx); got != tc.want {
			t.Errorf("%s(%d) = %q, want %q", tc.name, tc.idx, got, tc.want)
		}
	}
}

// TestIDFns_Panics checks the documented domain guards.
func TestIDFns_Panics(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"Symbol(26)":       func() { builder.SymbolIDFn(26) },
		"Symbol(-1)":       func() { builder.SymbolIDFn(-1) },
		"Alphanumeric(-1)": func() { builder.AlphanumericIDFn(-1) },
		"Excel(-1)":        func() { builder.ExcelColumnIDFn(-1) },
		"Hex(-1)":          func() { builder.HexIDFn(-1) },
		"SymbolNumber(-1)": func() { builder.SymbolNumberIDFn("x")(-1) },
	}
	for name, fn := range cases {
		assertPanics(t, fn, name)
	}
}

// assertPanics fails t unless fn panics.
func assertPanics(t *testing.T, fn func(), name string) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
