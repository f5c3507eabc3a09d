package facts

import (
	"regexp"
	"strings"

	"github.com/Thep1rince/oclaria-chatbot/internal/pricing"
)

type Family string

const (
	FamilyEarbuds Family = "earbuds"
	FamilyHooks   Family = "hooks"
	FamilyOpeners Family = "openers"
)

// Qualification is a tri-state: a quantified pack either meets the family's
// free-delivery threshold or not; a generic mention leaves it unknown.
type Qualification int

const (
	QualifiesUnknown Qualification = iota
	QualifiesYes
	QualifiesNo
)

// Fact is a structured statement derived from the latest user message. It is
// rendered into an authoritative system instruction that overrides the
// completion model's own pricing guesses.
type Fact struct {
	Family    Family
	Key       string
	Price     int
	HasPrice  bool
	Qualifies Qualification
	Threshold int
}

// family bundles a keyword matcher with the resolver that turns a match into
// a Fact, so detection is one loop instead of per-family branching.
type family struct {
	name       Family
	keyword    *regexp.Regexp
	quantified *regexp.Regexp
	keyPrefix  string
	threshold  int
}

// Keyword variants cover English, French and Arabic-script Darija, plus the
// earbuds model codes. Pack sizes match Latin or Arabic-Indic numerals, with
// the quantity anywhere after the family keyword.
var families = []family{
	{
		name:    FamilyEarbuds,
		keyword: regexp.MustCompile(`earbud|i121|écouteur|سماعات|m91`),
	},
	{
		name:       FamilyHooks,
		keyword:    regexp.MustCompile(`hook|crochet|كروشي`),
		quantified: regexp.MustCompile(`(?:hook|crochet|كروشي).*?(30|40|50|60|٣٠|٤٠|٥٠|٦٠)`),
		keyPrefix:  "hooks",
		threshold:  pricing.FreeHooks,
	},
	{
		name:       FamilyOpeners,
		keyword:    regexp.MustCompile(`openers?|ouvre|فتاحات`),
		quantified: regexp.MustCompile(`(?:openers?|ouvre|فتاحات).*?(6|12|24|48|٦|١٢|٢٤|٤٨)`),
		keyPrefix:  "open",
		threshold:  pricing.FreeOpeners,
	},
}

// Detect scans a raw user message for a product-family mention and returns at
// most one fact, walking families in priority order earbuds, hooks, openers.
// Only the first matching family is reported even when several are present.
// Pure and deterministic; no I/O.
func Detect(text string) (Fact, bool) {
	t := strings.ToLower(text)
	for _, fam := range families {
		if fact, ok := fam.resolve(t); ok {
			return fact, true
		}
	}
	return Fact{}, false
}

func (f family) resolve(text string) (Fact, bool) {
	if f.name == FamilyEarbuds {
		if !f.keyword.MatchString(text) {
			return Fact{}, false
		}
		return Fact{
			Family:    FamilyEarbuds,
			Key:       "earbuds",
			Price:     pricing.EarbudsPrice,
			HasPrice:  true,
			Qualifies: QualifiesYes,
			Threshold: 0,
		}, true
	}

	if m := f.quantified.FindStringSubmatch(text); m != nil {
		key := f.keyPrefix + latinDigits(m[1])
		if price, ok := pricing.Price(key); ok {
			qualifies := QualifiesNo
			if price >= f.threshold {
				qualifies = QualifiesYes
			}
			return Fact{
				Family:    f.name,
				Key:       key,
				Price:     price,
				HasPrice:  true,
				Qualifies: qualifies,
				Threshold: f.threshold,
			}, true
		}
	}

	if f.keyword.MatchString(text) {
		return Fact{
			Family:    f.name,
			Key:       string(f.name),
			Qualifies: QualifiesUnknown,
			Threshold: f.threshold,
		}, true
	}
	return Fact{}, false
}

// latinDigits folds Arabic-Indic digits (U+0660..U+0669) to their Latin
// equivalents and drops anything that is not a digit.
func latinDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		}
	}
	return b.String()
}
