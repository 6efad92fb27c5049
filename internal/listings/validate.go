package listings

import "regexp"

var contactNumberRe = regexp.MustCompile(`^[0-9]{10}$`)

// ValidContactNumber accepts exactly 10 ASCII digits. Values with spaces,
// country prefixes like +91, or a different digit count are rejected.
func ValidContactNumber(s string) bool {
	return contactNumberRe.MatchString(s)
}
