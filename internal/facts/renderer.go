package facts

import (
	"fmt"

	"github.com/Thep1rince/oclaria-chatbot/internal/pricing"
)

// Render turns a fact into one short authoritative sentence for injection as
// a system instruction. Every number in the output comes from the pricing
// table; a generic fact (no recognized quantity) states the threshold only,
// with one illustrative pack.
func Render(f Fact) string {
	switch f.Family {
	case FamilyEarbuds:
		return fmt.Sprintf("FACTS: Earbuds i121 price is %d MAD and delivery is always free (no threshold).", pricing.EarbudsPrice)
	case FamilyHooks:
		if f.HasPrice {
			return fmt.Sprintf("FACTS: Wall hooks pack detected: price %d MAD. %s", f.Price, deliveryNote(f))
		}
		example, _ := pricing.Price("hooks50")
		return fmt.Sprintf("FACTS: Wall hooks free delivery threshold is %d MAD (e.g., 50 pcs = %d MAD qualifies).", f.Threshold, example)
	case FamilyOpeners:
		if f.HasPrice {
			return fmt.Sprintf("FACTS: Can openers pack detected: price %d MAD. %s", f.Price, deliveryNote(f))
		}
		example, _ := pricing.Price("open48")
		return fmt.Sprintf("FACTS: Can openers free delivery threshold is %d MAD (e.g., 48 pcs = %d MAD qualifies).", f.Threshold, example)
	}
	return ""
}

func deliveryNote(f Fact) string {
	if f.Qualifies == QualifiesYes {
		return fmt.Sprintf("This pack qualifies for free delivery (≥ %d MAD).", f.Threshold)
	}
	return fmt.Sprintf("This pack does not reach %d MAD; customer must add items to qualify for free delivery.", f.Threshold)
}
