package lua

import (
	"regexp"
	"strings"
)

var (
	intPattern     = regexp.MustCompile(`^-?\d+$`)
	decimalPattern = regexp.MustCompile(`^(-?\d+)\.(\d+)$`)
)

// formatValue renders a single cell as a Lua expression. pos is the 1-based
// field position; the first field of a db table is its key, so it is always
// rendered as a string no matter what it looks like. Other fields fall back
// to a string when they are neither boolean nor numeric.
func formatValue(cell string, pos int) string {
	if pos == 1 {
		return luaString(cell)
	}
	if cell == "true" || cell == "false" {
		return cell
	}
	if intPattern.MatchString(cell) {
		return cell
	}
	if m := decimalPattern.FindStringSubmatch(cell); m != nil {
		return shortestDecimal(m[1], m[2])
	}
	return luaString(cell)
}

// luaString wraps cell in a long-bracket literal, which needs no escaping
// for the quotes and backslashes common in localisation text.
func luaString(cell string) string {
	return "[=[" + cell + "]=]"
}

// shortestDecimal drops trailing zeros from the fractional part, falling
// back to the integer part alone when nothing remains. Working on the
// digits directly keeps wide values exact instead of rounding them through
// a float.
func shortestDecimal(intPart, fraction string) string {
	fraction = strings.TrimRight(fraction, "0")
	if fraction == "" {
		return intPart
	}
	return intPart + "." + fraction
}
