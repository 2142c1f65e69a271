package rendering

import (
	"strings"
	"unicode"
)

// SafeFileName maps a record identifier to a file name made of ASCII letters,
// digits, '.', '-' and '_'. Any other rune becomes '_'.
func SafeFileName(id string) string {
	if id == "" {
		return "cv"
	}

	var result strings.Builder
	result.Grow(len(id))

	for _, r := range id {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			result.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			result.WriteRune(r)
		default:
			result.WriteRune('_')
		}
	}

	name := result.String()
	// Leading dots would hide the file.
	if strings.HasPrefix(name, ".") {
		name = "_" + name[1:]
	}
	return name
}

// Initials returns up to two upper-case initials of a full name.
func Initials(name string) string {
	var result []rune
	for _, part := range strings.Fields(name) {
		r := []rune(part)[0]
		result = append(result, unicode.ToUpper(r))
		if len(result) == 2 {
			break
		}
	}
	return string(result)
}
