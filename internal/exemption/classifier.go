// Package exemption decides whether the item referenced in a VAT question
// falls under one of the Nigerian VAT exemption categories.
//
// The classifier tokenizes the question into candidate phrases, expands
// them through a synonym table and scores each candidate against curated
// per-category keyword lists. The first (category, candidate, keyword)
// triple whose adjusted confidence reaches the acceptance threshold wins;
// earlier-declared categories win ties.
package exemption

import "strings"

// MinConfidence is the acceptance threshold: no match below it may flip a
// verdict to exempt.
const MinConfidence = 85

// Verdict is the classification outcome. Category and Confidence are only
// meaningful when IsExempt is true.
type Verdict struct {
	IsExempt   bool   `json:"isExempt"`
	Category   string `json:"category,omitempty"`
	Confidence int    `json:"confidence,omitempty"`
}

// exportCompanions are the context words required next to "export" for the
// export-services bypass.
var exportCompanions = []string{"service", "good", "product", "shipping", "international"}

// Classify evaluates a VAT question. Text without a VAT mention returns a
// not-exempt verdict immediately.
func Classify(text string) Verdict {
	lower := strings.ToLower(text)
	if !strings.Contains(lower, "vat") && !strings.Contains(lower, "value added tax") {
		return Verdict{}
	}

	// Export services are special-cased ahead of the keyword scan: plain
	// substring logic over "export" is too loose in either direction.
	if strings.Contains(lower, "export") {
		for _, companion := range exportCompanions {
			if strings.Contains(lower, companion) {
				return Verdict{IsExempt: true, Category: CategoryExportServices, Confidence: 95}
			}
		}
	}

	candidates := Candidates(text)
	for _, cat := range categories {
		for _, cand := range candidates {
			for _, kw := range cat.Keywords {
				score, ok := scoreMatch(cand, kw)
				if !ok {
					continue
				}
				score += cat.Adjust
				if cand == kw {
					score += 10
				}
				if score > 100 {
					score = 100
				}
				if score >= MinConfidence {
					return Verdict{IsExempt: true, Category: cat.Name, Confidence: score}
				}
			}
		}
	}
	return Verdict{}
}

// scoreMatch computes the raw confidence for one (candidate, keyword)
// pair. Short keywords demand whole-word matches; longer ones may match by
// containment; multi-word keywords match part-wise against single-word
// candidates.
func scoreMatch(candidate, keyword string) (int, bool) {
	multiKw := strings.Contains(keyword, " ")
	multiCand := strings.Contains(candidate, " ")

	switch {
	case !multiKw && len(keyword) <= 4:
		if containsWord(candidate, keyword) {
			return 85, true
		}
		if containsWord(candidate, keyword+"s") {
			return 80, true
		}

	case !multiKw:
		if containsWord(candidate, keyword) {
			return 90, true
		}
		if len(keyword) > 6 {
			if strings.Contains(candidate, keyword) {
				return 85, true
			}
			if strings.Contains(keyword, candidate) {
				return 75, true
			}
		}

	default:
		if multiCand {
			if strings.Contains(candidate, keyword) {
				return 95, true
			}
			if strings.Contains(keyword, candidate) {
				return 85, true
			}
		} else {
			for _, part := range strings.Fields(keyword) {
				if part == candidate {
					return 80, true
				}
			}
			for _, part := range strings.Fields(keyword) {
				if containsWord(part, candidate) {
					return 70, true
				}
			}
		}
	}
	return 0, false
}

// containsWord reports whether w occurs in s bounded by non-alphanumeric
// characters (or the string edges).
func containsWord(s, w string) bool {
	if w == "" {
		return false
	}
	for start := 0; ; {
		idx := strings.Index(s[start:], w)
		if idx < 0 {
			return false
		}
		idx += start
		end := idx + len(w)
		beforeOK := idx == 0 || !isWordByte(s[idx-1])
		afterOK := end == len(s) || !isWordByte(s[end])
		if beforeOK && afterOK {
			return true
		}
		start = idx + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b >= 'A' && b <= 'Z'
}
