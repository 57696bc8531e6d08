package emit

import (
	"strconv"
	"strings"
)

// Float formats v as a WGSL abstract float literal.
//
// The shortest representation that round-trips through float32 is used and
// a ".0" suffix is added to integral values, so 8 becomes "8.0" and 255/16
// becomes "15.9375". strconv never consults the process locale.
func Float(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 32)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// Int formats n as a WGSL float literal.
func Int(n int) string {
	return strconv.Itoa(n) + ".0"
}
