package media

import (
	"regexp"
	"strings"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify derives a plant's media folder name from its scientific name.
// The name is lower-cased, every run of non-alphanumeric characters is
// replaced with a single underscore, and leading/trailing underscores are
// trimmed. This is the canonical folder-key rule; the resolver, the seeder
// and the repair engine all rely on it matching exactly.
func Slugify(scientificName string) string {
	s := strings.ToLower(scientificName)
	s = slugSeparators.ReplaceAllString(s, "_")
	return strings.Trim(s, "_")
}
