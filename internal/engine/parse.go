// Package engine implements the comparable adjustment and weighted valuation
// engine: pure computation from a subject plus adjusted comparables (or a
// net-income/cap-rate triple) to an indicated value.
package engine

import (
	"math"
	"strconv"
	"strings"
)

// NumberKind tells the lenient parser what decoration to expect in raw text.
type NumberKind int

// Number kinds accepted at the input edge.
const (
	Plain NumberKind = iota
	Currency
	Percent
)

// ParseLenient normalizes a user-entered numeric string at the input edge so
// the engine's internals only ever see clean floats. Currency strips "$" and
// thousands separators, Percent strips "%". Parenthesized amounts are read
// as negative. Unparsable or non-finite input returns (0, false); callers
// keep the raw text for re-display and treat the value as zero.
func ParseLenient(raw string, kind NumberKind) (float64, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = s[1 : len(s)-1]
	}

	switch kind {
	case Currency:
		s = strings.ReplaceAll(s, "$", "")
	case Percent:
		s = strings.ReplaceAll(s, "%", "")
	case Plain:
	}
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	if negative {
		v = -v
	}
	return v, true
}
