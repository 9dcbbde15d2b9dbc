package confparse

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseBool coerces a textual setting value into a bool. Only "yes" and
// "no" (case-insensitive) are accepted, matching the settings-file grammar
// rather than Go's broader true/false/1/0 convention.
func ParseBool(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "yes":
		return true, nil
	case "no":
		return false, nil
	default:
		return false, fmt.Errorf("Invalid boolean: %s", value)
	}
}

// ParseUint coerces a textual setting value into a non-negative integer.
// It accepts plain decimal and "0"-prefixed octal, mirroring the original
// C parser's use of a %i-equivalent scan so that e.g. umask-style "0600"
// values are read as octal. A leading "0x" is rejected: no setting in this
// domain is ever expressed in hexadecimal, so admitting the format would
// only hide a typo.
func ParseUint(value string) (uint64, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, fmt.Errorf("Invalid number: %s", value)
	}
	if strings.HasPrefix(v, "-") {
		return 0, fmt.Errorf("Invalid number: %s", value)
	}
	if len(v) > 1 && (v[1] == 'x' || v[1] == 'X') {
		return 0, fmt.Errorf("Invalid number: %s", value)
	}

	base := 10
	digits := v
	if len(v) > 1 && v[0] == '0' {
		base = 8
	}

	n, err := strconv.ParseUint(digits, base, 64)
	if err != nil {
		return 0, fmt.Errorf("Invalid number: %s", value)
	}
	return n, nil
}
