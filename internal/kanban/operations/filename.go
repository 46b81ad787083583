package operations

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var multiDash = regexp.MustCompile(`-+`)

// Slugify converts a title to a lowercase, dash-separated id
// "In Progress!" -> "in-progress"
func Slugify(title string) string {
	s := strings.ToLower(title)

	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "_", "-")

	var result strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' {
			result.WriteRune(r)
		}
	}

	s = multiDash.ReplaceAllString(result.String(), "-")
	return strings.Trim(s, "-")
}

// UniqueID returns base if taken reports false for it, otherwise the first
// free base-2, base-3, ...
func UniqueID(base string, taken func(string) bool) string {
	if !taken(base) {
		return base
	}
	for i := 2; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !taken(candidate) {
			return candidate
		}
	}
}
