package catalog

import (
	"math"
	"strconv"
	"strings"
)

// OptFloat is a float bound with explicit presence.
type OptFloat struct {
	Value float64
	Set   bool
}

// OptInt is an integer bound with explicit presence.
type OptInt struct {
	Value int
	Set   bool
}

// Float returns a set OptFloat.
func Float(v float64) OptFloat { return OptFloat{Value: v, Set: true} }

// Int returns a set OptInt.
func Int(v int) OptInt { return OptInt{Value: v, Set: true} }

// active reports whether the bound constrains anything. Zero and negative
// values count as unset.
func (o OptFloat) active() bool { return o.Set && o.Value > 0 }

func (o OptInt) active() bool { return o.Set && o.Value > 0 }

// ParseFloat parses free text into a bound. It never fails: blank,
// non-numeric, NaN and infinite input all give the unset value.
func ParseFloat(s string) OptFloat {
	s = strings.TrimSpace(s)
	if s == "" {
		return OptFloat{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return OptFloat{}
	}
	return Float(v)
}

// ParseInt parses free text into an integer bound. Decimal input is
// truncated ("250.7" -> 250); anything unparsable gives the unset value.
func ParseInt(s string) OptInt {
	s = strings.TrimSpace(s)
	if s == "" {
		return OptInt{}
	}
	if n, err := strconv.Atoi(s); err == nil {
		return Int(n)
	}
	f := ParseFloat(s)
	if !f.Set || f.Value > math.MaxInt32 || f.Value < math.MinInt32 {
		return OptInt{}
	}
	return Int(int(f.Value))
}
