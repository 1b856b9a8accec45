package numberutils

// IsDigits checks if the given string is non-empty and contains only ASCII digits (0-9).
// Other unicode digits are rejected so the string can be used verbatim in URLs.
func IsDigits(str string) bool {
	if str == "" {
		return false
	}
	for i := 0; i < len(str); i++ {
		if str[i] < '0' || str[i] > '9' {
			return false
		}
	}
	return true
}
