package exemption

import (
	"regexp"
	"sort"
	"strings"

	"github.com/taxmateNG/tax-assistant-service/internal/extraction"
)

// triggerPhrases mark where the question ends and the item being asked
// about begins. The portion after the last trigger is the item part.
// Longer phrases are listed first so they are preferred over their tails.
var triggerPhrases = []string{
	"what is the vat on",
	"what is vat on",
	"how much vat on",
	"calculate vat on",
	"calculate vat for",
	"compute vat on",
	"compute vat for",
	"charge vat on",
	"vat payable on",
	"vat on",
	"vat for",
	"vat of",
}

// stopWords are dropped before candidate phrases are built. "per", "each"
// and "worth" are deliberate: they precede price/quantity phrasing
// ("₦5000 per person") and used to cause false exemption matches when kept.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "of": {}, "for": {}, "on": {}, "in": {},
	"at": {}, "to": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {},
	"been": {}, "am": {}, "do": {}, "does": {}, "did": {}, "what": {},
	"how": {}, "much": {}, "many": {}, "i": {}, "my": {}, "me": {}, "we": {},
	"our": {}, "you": {}, "your": {}, "it": {}, "its": {}, "this": {},
	"that": {}, "these": {}, "those": {}, "with": {}, "and": {}, "or": {},
	"if": {}, "when": {}, "per": {}, "each": {}, "worth": {}, "costing": {},
	"cost": {}, "costs": {}, "price": {}, "priced": {}, "pay": {},
	"paying": {}, "buy": {}, "buying": {}, "bought": {}, "purchase": {},
	"purchased": {}, "naira": {}, "ngn": {}, "total": {}, "amount": {},
	"calculate": {}, "compute": {}, "vat": {}, "value": {}, "added": {},
	"tax": {}, "please": {}, "would": {}, "like": {}, "want": {}, "need": {},
}

var (
	punctRe = regexp.MustCompile(`[^a-z0-9\s]+`)
	digitRe = regexp.MustCompile(`\d`)

	// "5kg rice", "10 packs of formula" — the noun after a measurement is
	// the item, even though the stop-word filter would strip everything
	// around it.
	measuredNounRe = regexp.MustCompile(`(?i)\b\d+(?:[.,]\d+)?\s*` +
		extraction.UnitPattern + `\s+(?:of\s+)?([a-zA-Z]+)`)
)

// Candidates tokenizes the text into candidate phrases: every surviving
// word, its stem, adjacent bigrams and trigrams, nouns attached to a
// measurement, and synonym-expanded variants of all of the above. The
// returned order is deterministic; the classifier relies on it for
// reproducible tie-breaking.
func Candidates(text string) []string {
	clean := punctRe.ReplaceAllString(strings.ToLower(text), " ")

	// Keep only what follows the last trigger phrase, if any.
	itemPart := clean
	cut := -1
	for _, trig := range triggerPhrases {
		if idx := strings.LastIndex(clean, trig); idx >= 0 && idx+len(trig) > cut {
			cut = idx + len(trig)
		}
	}
	if cut >= 0 {
		itemPart = clean[cut:]
	}

	var words []string
	for _, tok := range strings.Fields(itemPart) {
		if len(tok) <= 1 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if digitRe.MatchString(tok) {
			continue
		}
		words = append(words, tok)
	}

	var out []string
	seen := make(map[string]struct{})
	add := func(c string) {
		if c == "" {
			return
		}
		if _, dup := seen[c]; dup {
			return
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}

	for _, w := range words {
		add(w)
		if s := Stem(w); s != w {
			add(s)
		}
	}
	for i := 0; i+1 < len(words); i++ {
		add(words[i] + " " + words[i+1])
	}
	for i := 0; i+2 < len(words); i++ {
		add(words[i] + " " + words[i+1] + " " + words[i+2])
	}

	// Measurement-attached nouns from the original text.
	for _, m := range measuredNounRe.FindAllStringSubmatch(text, -1) {
		noun := strings.ToLower(m[1])
		if len(noun) <= 1 {
			continue
		}
		if _, stop := stopWords[noun]; stop {
			continue
		}
		add(noun)
		if s := Stem(noun); s != noun {
			add(s)
		}
	}

	// Synonym expansion over the accumulated set. Keys are walked in sorted
	// order: ranging the map directly would randomize the candidate order.
	keys := make([]string, 0, len(synonyms))
	for key := range synonyms {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, c := range out[:len(out):len(out)] {
		for _, key := range keys {
			for _, v := range expandWord(c, key, synonyms[key]) {
				add(v)
			}
		}
	}

	return out
}

// expandWord replaces whole-word occurrences of key inside the candidate
// with each alternative.
func expandWord(candidate, key string, alts []string) []string {
	parts := strings.Fields(candidate)
	hit := false
	for _, p := range parts {
		if p == key {
			hit = true
			break
		}
	}
	if !hit {
		return nil
	}
	var variants []string
	for _, alt := range alts {
		repl := make([]string, len(parts))
		for i, p := range parts {
			if p == key {
				repl[i] = alt
			} else {
				repl[i] = p
			}
		}
		variants = append(variants, strings.Join(repl, " "))
	}
	return variants
}

// Stem strips basic plural suffixes: "-ies" -> "-y", then "-es", then "-s".
// Short words are left alone so "gas" or "is" never collapse.
func Stem(w string) string {
	switch {
	case strings.HasSuffix(w, "ies") && len(w) >= 6:
		return w[:len(w)-3] + "y"
	case strings.HasSuffix(w, "es") && len(w) >= 5 && !strings.HasSuffix(w, "ses"):
		return w[:len(w)-2]
	case strings.HasSuffix(w, "s") && !strings.HasSuffix(w, "ss") && len(w) >= 4:
		return w[:len(w)-1]
	}
	return w
}
