package classification

import (
	"strings"

	"github.com/gosimple/slug"
)

// noiseChars are stripped before slugging; card processors pad merchant
// names with them (e.g. "UBER*TRIP").
var noiseChars = []string{"*"}

// Slugify turns a free-text statement description into the key rules are
// stored under. Deterministic and idempotent.
func Slugify(description string) string {
	for _, c := range noiseChars {
		description = strings.ReplaceAll(description, c, "")
	}
	return slug.Make(description)
}
