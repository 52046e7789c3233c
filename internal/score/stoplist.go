// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Stoplist is a set of tokens excluded from vectorization and keyword
// analysis. Tokens are stored lowercase.
type Stoplist map[string]bool

// Contains reports whether token is in the stoplist. The token is
// expected to be lowercase already.
func (s Stoplist) Contains(token string) bool {
	return s[token]
}

// LoadStoplist reads a newline-separated stopword file. Blank lines and
// lines starting with '#' are ignored. An empty path returns the
// built-in English stoplist.
func LoadStoplist(path string) (Stoplist, error) {
	if path == "" {
		return DefaultStoplist(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stoplist %s: %w", path, err)
	}
	defer f.Close()

	list := make(Stoplist)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		list[word] = true
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stoplist %s: %w", path, err)
	}

	return list, nil
}

// DefaultStoplist returns the built-in English stoplist plus common
// job-posting boilerplate.
func DefaultStoplist() Stoplist {
	list := make(Stoplist, len(englishStopwords)+len(postingBoilerplate))
	for _, w := range englishStopwords {
		list[w] = true
	}
	for _, w := range postingBoilerplate {
		list[w] = true
	}
	return list
}

// postingBoilerplate lists filler words that dominate job descriptions
// but carry no skill signal. Stand-in for part-of-speech filtering.
var postingBoilerplate = []string{
	"ability", "candidate", "etc", "excellent", "including", "must",
	"plus", "preferred", "proven", "qualifications", "required",
	"requirements", "responsibilities", "role", "strong", "years",
}

// englishStopwords is a compact English function-word list in the spirit
// of the usual IR stoplists. Domain terms are deliberately absent.
var englishStopwords = []string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an",
	"and", "any", "are", "as", "at", "be", "because", "been", "before",
	"being", "below", "between", "both", "but", "by", "can", "could",
	"did", "do", "does", "doing", "down", "during", "each", "few", "for",
	"from", "further", "had", "has", "have", "having", "he", "her",
	"here", "hers", "herself", "him", "himself", "his", "how", "i", "if",
	"in", "into", "is", "it", "its", "itself", "just", "me", "more",
	"most", "my", "myself", "no", "nor", "not", "now", "of", "off", "on",
	"once", "only", "or", "other", "our", "ours", "ourselves", "out",
	"over", "own", "same", "she", "should", "so", "some", "such", "than",
	"that", "the", "their", "theirs", "them", "themselves", "then",
	"there", "these", "they", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "we", "were", "what", "when",
	"where", "which", "while", "who", "whom", "why", "will", "with",
	"would", "you", "your", "yours", "yourself", "yourselves",
}
