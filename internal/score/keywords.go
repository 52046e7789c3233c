// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package score

import "sort"

// MissingKeywords returns job-description tokens absent from the resume,
// ordered by descending frequency in the job description with ties
// broken lexicographically, capped at limit (0 means no cap). Matching
// is exact on normalized tokens; no fuzzy or synonym matching.
func MissingKeywords(jobText, resumeText string, stoplist Stoplist, limit int) []string {
	jobFreqs := termFreqs(Tokenize(jobText), stoplist)
	if len(jobFreqs) == 0 {
		return nil
	}

	present := make(map[string]bool)
	for _, tok := range Tokenize(resumeText) {
		present[tok] = true
	}

	missing := make([]string, 0, len(jobFreqs))
	for term := range jobFreqs {
		if !present[term] {
			missing = append(missing, term)
		}
	}

	sort.Slice(missing, func(i, j int) bool {
		fi, fj := jobFreqs[missing[i]], jobFreqs[missing[j]]
		if fi != fj {
			return fi > fj
		}
		return missing[i] < missing[j]
	})

	if limit > 0 && len(missing) > limit {
		missing = missing[:limit]
	}
	return missing
}
