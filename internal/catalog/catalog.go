package catalog

import (
	"encoding/json"
	"log/slog"
	"os"
	"strings"

	"github.com/Thep1rince/oclaria-chatbot/internal/pricing"
)

const defaultCatalogPage = "https://oclaria.com/products"

type Product struct {
	Name     string `json:"name"`
	Price    int    `json:"price"`
	Link     string `json:"link"`
	Category string `json:"category"`
}

// Catalog is the product data embedded into the assistant's system prompt.
// It is loaded once at startup and read-only afterwards.
type Catalog struct {
	Products    map[string]Product `json:"products"`
	CatalogPage string             `json:"catalog_page"`
}

// Load reads the catalog document at path. A missing or unparseable document
// degrades to an empty catalog: the server keeps running with a prompt that
// carries no concrete product data. Prices of products whose key matches a
// SKU variant in the pricing table are overridden by the table, which is the
// single source of pricing truth.
func Load(path string, logger *slog.Logger) Catalog {
	if logger == nil {
		logger = slog.Default()
	}

	cat := Catalog{Products: map[string]Product{}, CatalogPage: defaultCatalogPage}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("catalog document unavailable, serving with empty catalog", "path", path, "error", err)
		return cat
	}

	var parsed Catalog
	if err := json.Unmarshal(raw, &parsed); err != nil {
		logger.Warn("catalog document unparseable, serving with empty catalog", "path", path, "error", err)
		return cat
	}

	if parsed.Products != nil {
		cat.Products = parsed.Products
	}
	if strings.TrimSpace(parsed.CatalogPage) != "" {
		cat.CatalogPage = strings.TrimSpace(parsed.CatalogPage)
	}

	overridden := 0
	for _, key := range pricing.Keys() {
		product, ok := cat.Products[key]
		if !ok {
			continue
		}
		tablePrice, _ := pricing.Price(key)
		if product.Price != tablePrice {
			product.Price = tablePrice
			cat.Products[key] = product
			overridden++
		}
	}

	keys := make([]string, 0, len(cat.Products))
	for key := range cat.Products {
		keys = append(keys, key)
	}
	logger.Info("catalog loaded", "path", path, "products", keys, "prices_overridden", overridden)
	return cat
}

// PromptJSON renders the catalog as indented JSON for verbatim embedding in
// the system prompt.
func (c Catalog) PromptJSON() string {
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(raw)
}
