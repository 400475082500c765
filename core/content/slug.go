package content

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	stripMarks  = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	nonAlphaNum = regexp.MustCompile(`[^a-z0-9]+`)
	edgeHyphens = regexp.MustCompile(`^-+|-+$`)
)

// Slugify lowers the name, strips accents and collapses everything else to hyphens.
func Slugify(name string) string {
	s := strings.ToLower(name)
	if stripped, _, err := transform.String(stripMarks, s); err == nil {
		s = stripped
	}
	s = nonAlphaNum.ReplaceAllString(s, "-")
	return edgeHyphens.ReplaceAllString(s, "")
}

// GenerateID derives an entity id from a human-readable name, suffixed with a
// millisecond timestamp for uniqueness. Ids are immutable after creation.
func GenerateID(name string, now time.Time) string {
	return Slugify(name) + "-" + strconv.FormatInt(now.UnixMilli(), 10)
}
