// Package venues canonicalizes free-text venue names. Raw names from
// different sources disagree on articles, abbreviations, and spelling
// ("Fillmore West" vs "The Fillmore West Auditorium"); the registry folds
// them onto one canonical entry per venue and tracks every alias seen.
package venues

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
)

// rewrite is a single normalization rule applied to folded venue text.
type rewrite struct {
	pattern     *regexp.Regexp
	replacement string
}

// rewrites standardize the venue vocabulary before comparison. Order
// matters: longer abbreviations rewrite before their prefixes.
var rewrites = []rewrite{
	{regexp.MustCompile(`^the\s+`), ""},
	{regexp.MustCompile(`\s+the$`), ""},
	{regexp.MustCompile(`&`), " and "},
	{regexp.MustCompile(`\btheatre\b`), "theater"},
	{regexp.MustCompile(`\bamphitheatre\b`), "amphitheater"},
	{regexp.MustCompile(`\bcentre\b`), "center"},
	{regexp.MustCompile(`\bctr\b\.?`), "center"},
	{regexp.MustCompile(`\buniv\b\.?`), "university"},
	{regexp.MustCompile(`\bu\s+of\s+`), "university of "},
	{regexp.MustCompile(`\bcoll\b\.?`), "college"},
	{regexp.MustCompile(`\baud\b\.?`), "auditorium"},
	{regexp.MustCompile(`\bst\b\.?`), "street"},
	{regexp.MustCompile(`\bave\b\.?`), "avenue"},
	{regexp.MustCompile(`\bblvd\b\.?`), "boulevard"},
	{regexp.MustCompile(`\brd\b\.?`), "road"},
	{regexp.MustCompile(`\bmt\b\.?`), "mount"},
}

var (
	punct      = regexp.MustCompile(`[,\.\'"()]`)
	whitespace = regexp.MustCompile(`\s+`)
	nonSlug    = regexp.MustCompile(`[^a-z0-9]+`)

	folder = cases.Fold()
)

// Normalize folds a raw venue name to its comparison form: case-folded,
// punctuation stripped, abbreviations expanded, whitespace collapsed.
func Normalize(name string) string {
	n := folder.String(strings.TrimSpace(name))
	n = punct.ReplaceAllString(n, "")
	for _, rw := range rewrites {
		n = rw.pattern.ReplaceAllString(n, rw.replacement)
	}
	return strings.TrimSpace(whitespace.ReplaceAllString(n, " "))
}

// Key derives the canonical venue key from a raw name. It is a pure
// function of the normalized name, so repeated normalization runs always
// regenerate identical keys.
func Key(name string) string {
	return strings.Trim(nonSlug.ReplaceAllString(Normalize(name), "-"), "-")
}

// Similarity scores two venue names in [0,1]. Normalized exact matches
// score 1.0 and substring containment 0.8; otherwise the score is token
// overlap (Jaccard), boosted by 0.2 when two or more tokens agree.
func Similarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1.0
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return 0.8
	}

	tokensA := tokenSet(na)
	tokensB := tokenSet(nb)

	common := 0
	for tok := range tokensA {
		if tokensB[tok] {
			common++
		}
	}
	union := len(tokensA) + len(tokensB) - common
	if union == 0 {
		return 0
	}

	score := float64(common) / float64(union)
	if common >= 2 {
		score += 0.2
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func tokenSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, tok := range strings.Fields(s) {
		set[tok] = true
	}
	return set
}
