package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidatePath validates a dataset, config or output path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 1024
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

var hexColorRegex = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// cssColorNameRegex matches bare CSS color keywords such as "steelblue".
var cssColorNameRegex = regexp.MustCompile(`^[a-z]{3,20}$`)

// ValidateColor validates a color used for series strokes and backgrounds.
// Accepted forms are "#rgb", "#rrggbb" and lowercase CSS color keywords.
// The value ends up inside an SVG attribute, so anything else is rejected.
func ValidateColor(color string) error {
	if color == "" {
		return New(ErrCodeInvalidColor, "color cannot be empty")
	}
	if strings.HasPrefix(color, "#") {
		if !hexColorRegex.MatchString(color) {
			return New(ErrCodeInvalidColor, "invalid hex color: %q", color)
		}
		return nil
	}
	if !cssColorNameRegex.MatchString(color) {
		return New(ErrCodeInvalidColor, "invalid color name: %q", color)
	}
	return nil
}
