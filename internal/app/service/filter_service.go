package service

import (
	"strings"

	"github.com/citra/storefront/internal/app/model"
)

// FilterProducts returns the products that satisfy every set field of sel,
// in input order. The result is a fresh slice of copies.
func FilterProducts(products []model.Product, sel model.Selection) []model.Product {
	query := strings.ToLower(strings.TrimSpace(sel.SearchQuery))
	path := sel.Path()

	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if !p.InPath(path) {
			continue
		}
		if query != "" && !matchesSearch(p, query) {
			continue
		}
		out = append(out, p.Clone())
	}
	return out
}

// matchesSearch expects query already lower-cased and trimmed
func matchesSearch(p model.Product, query string) bool {
	if strings.Contains(strings.ToLower(p.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Brand), query) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// NewArrivals returns up to limit products flagged new, in store order
func NewArrivals(products []model.Product, limit int) []model.Product {
	return firstMatching(products, limit, func(p model.Product) bool { return p.IsNew })
}

// Bestsellers returns up to limit products flagged bestseller, in store order
func Bestsellers(products []model.Product, limit int) []model.Product {
	return firstMatching(products, limit, func(p model.Product) bool { return p.IsBestseller })
}

// BestDeals returns up to limit discounted products, in store order
func BestDeals(products []model.Product, limit int) []model.Product {
	return firstMatching(products, limit, model.Product.HasDiscount)
}

func firstMatching(products []model.Product, limit int, keep func(model.Product) bool) []model.Product {
	out := make([]model.Product, 0, limit)
	for _, p := range products {
		if len(out) >= limit {
			break
		}
		if keep(p) {
			out = append(out, p.Clone())
		}
	}
	return out
}
