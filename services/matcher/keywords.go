package matcher

import "strings"

// Separator set used when tokenizing free-text program fields.
func isSeparator(r rune) bool {
	switch r {
	case ' ', '\t', '\n', ',', '-', '/':
		return true
	}
	return false
}

// Stopwords dropped from program text before keyword matching. These are the
// filler words that show up in program names without carrying field meaning.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "into": {},
	"course": {}, "program": {}, "programme": {}, "degree": {},
	"studies": {}, "study": {}, "bachelor": {}, "bachelors": {},
	"master": {}, "masters": {}, "msc": {}, "bsc": {},
}

// Tokenize splits free text on the program-field separator set and drops
// tokens of 2 characters or fewer. Case is folded.
func Tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), isSeparator)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if len(f) > 2 {
			out = append(out, f)
		}
	}
	return out
}

// TokenizeKeywords is Tokenize with stopwords removed on top of the length
// filter. Used for the course keyword-overlap band.
func TokenizeKeywords(text string) []string {
	fields := Tokenize(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if _, skip := stopwords[f]; !skip {
			out = append(out, f)
		}
	}
	return out
}

// fieldCluster groups related program keywords. If both the profile text and
// the course text hit the same cluster, the course earns a small bonus even
// when no tokens overlap directly.
type fieldCluster struct {
	name  string
	terms []string
}

// Cluster order matters: the first cluster matching both sides wins and the
// bonus is applied at most once.
var fieldClusters = []fieldCluster{
	{"cs", []string{"computer", "computing", "software", "informatics", "data", "artificial", "cyber", "information"}},
	{"business", []string{"business", "management", "finance", "accounting", "marketing", "economics", "commerce", "mba"}},
	{"engineering", []string{"engineering", "mechanical", "electrical", "civil", "electronics", "mechatronics", "aerospace"}},
	{"science", []string{"science", "physics", "chemistry", "biology", "mathematics", "biotechnology", "environmental"}},
	{"arts", []string{"arts", "design", "media", "communication", "literature", "history", "psychology", "sociology"}},
}

// matchesCluster reports whether any cluster term appears as a substring of
// the lowercased text.
func matchesCluster(text string, c fieldCluster) bool {
	for _, term := range c.terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}

// sharedCluster returns the first cluster both texts hit, if any. Inputs must
// already be lowercased.
func sharedCluster(a, b string) (fieldCluster, bool) {
	for _, c := range fieldClusters {
		if matchesCluster(a, c) && matchesCluster(b, c) {
			return c, true
		}
	}
	return fieldCluster{}, false
}

// overlapFraction computes the fraction of want tokens present in the token
// set built from haystack text. Returns 0 when want is empty.
func overlapFraction(want []string, haystack string) float64 {
	if len(want) == 0 {
		return 0
	}
	hay := make(map[string]struct{})
	for _, t := range Tokenize(haystack) {
		hay[t] = struct{}{}
	}
	hit := 0
	for _, w := range want {
		if _, ok := hay[w]; ok {
			hit++
		}
	}
	return float64(hit) / float64(len(want))
}

// firstNWords returns the first n whitespace-separated words of text.
func firstNWords(text string, n int) string {
	fields := strings.Fields(text)
	if len(fields) > n {
		fields = fields[:n]
	}
	return strings.Join(fields, " ")
}
