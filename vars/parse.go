package vars

import (
	"strconv"
	"strings"
)

// ParseBool accepts the usual spellings of yes and no. ok is false for anything else.
func ParseBool(str string) (value bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(str)) {
	case "true", "t", "yes", "y", "on", "1":
		return true, true
	case "false", "f", "no", "n", "off", "0":
		return false, true
	}
	return false, false
}

// StrToBool is ParseBool with unknown spellings read as false.
func StrToBool(str string) bool {
	value, _ := ParseBool(str)
	return value
}

// PositiveInt returns zero unless str is a positive decimal integer.
func PositiveInt(str string) int {
	n, err := strconv.Atoi(strings.TrimSpace(str))
	if err != nil || n <= 0 {
		return 0
	}
	return n
}
