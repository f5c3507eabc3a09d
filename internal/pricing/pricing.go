package pricing

// The price list is compiled in and is the single source of pricing truth.
// Catalog display data is overlaid from it at load time so the prompt and the
// injected facts can never disagree. All amounts are MAD.

const (
	// FreeHooks is the minimum order value at which a wall-hooks order
	// ships free.
	FreeHooks = 120
	// FreeOpeners is the minimum order value at which a can-openers order
	// ships free.
	FreeOpeners = 150
	// EarbudsPrice is the fixed price of the i121 earbuds, which always
	// ship free.
	EarbudsPrice = 320
)

var table = map[string]int{
	"hooks30": 80,
	"hooks40": 110,
	"hooks50": 135,
	"hooks60": 150,
	"open6":   40,
	"open12":  70,
	"open24":  135,
	"open48":  250,
	"earbuds": EarbudsPrice,
}

// Price returns the fixed price for a SKU-variant key such as "hooks50" or
// "open24". The second return is false for unknown keys.
func Price(key string) (int, bool) {
	price, ok := table[key]
	return price, ok
}

// Keys returns the known SKU-variant keys. Used by the catalog loader to
// decide which loaded products get their price overridden by the table.
func Keys() []string {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	return keys
}
