// Package catalog serves the storefront's product data. The catalog is held
// in process, so lookups are cheap and the backend has no product database
// to stand up.
package catalog

import (
	"strings"

	"github.com/mayank-0789/azclone-1/pkg/models"
)

// All returns every product in the catalog.
func All() []models.Product {
	return products
}

// ByID returns the product with the given id, or false when it is unknown.
func ByID(id int) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// ByCategory filters products by category. "All" or empty returns everything.
func ByCategory(category string) []models.Product {
	if category == "" || strings.EqualFold(category, "All") {
		return products
	}
	var results []models.Product
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			results = append(results, p)
		}
	}
	return results
}

// Search matches products whose title or category contains the query,
// case-insensitively, optionally narrowed to a category first.
func Search(query, category string) []models.Product {
	results := products
	if category != "" && !strings.EqualFold(category, "All") {
		cat := strings.ReplaceAll(strings.ToLower(category), " ", "-")
		cat = strings.ReplaceAll(cat, "&", "")
		var narrowed []models.Product
		for _, p := range results {
			if strings.Contains(strings.ToLower(p.Category), cat) {
				narrowed = append(narrowed, p)
			}
		}
		results = narrowed
	}
	if query == "" {
		return results
	}
	q := strings.ToLower(query)
	var matched []models.Product
	for _, p := range results {
		if strings.Contains(strings.ToLower(p.Title), q) || strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Categories returns the browse categories shown on the home page.
func Categories() []models.Category {
	return categories
}
