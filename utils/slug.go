package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases the title, collapses every run of non-alphanumeric
// characters into a single hyphen and trims leading/trailing hyphens.
func Slugify(title string) string {
	slug := strings.ToLower(title)
	slug = nonSlugChars.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// UniqueSlug derives a slug from title and appends -1, -2, ... until exists
// reports it free. exists is typically a closure over a database lookup.
func UniqueSlug(title string, exists func(slug string) bool) string {
	base := Slugify(title)
	if base == "" {
		base = "post"
	}
	slug := base
	for i := 1; exists(slug); i++ {
		slug = fmt.Sprintf("%s-%d", base, i)
	}
	return slug
}
