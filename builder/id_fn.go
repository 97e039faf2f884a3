// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to a vertex ID. Implementations must
// be injective over the indices a constructor uses.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: "0", "1", ….
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn maps 0..25 to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}

	return string('A' + rune(idx))
}

// AlphanumericIDFn returns idx in base 36: "0".."9","a".."z","10",….
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 36)
}

// ExcelColumnIDFn returns spreadsheet column names: "A".."Z","AA","AB",….
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

// HexIDFn returns idx in lowercase hexadecimal.
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}

	return strconv.FormatInt(int64(idx), 16)
}

// SymbolNumberIDFn returns prefix followed by the decimal index ("v0", "v1", …).
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}

		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbNumb is WithIDScheme(SymbolNumberIDFn(prefix)).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithHexIDs selects HexIDFn.
func WithHexIDs() BuilderOption { return WithIDScheme(HexIDFn) }

// WithAlphanumericIDs selects AlphanumericIDFn.
func WithAlphanumericIDs() BuilderOption { return WithIDScheme(AlphanumericIDFn) }
