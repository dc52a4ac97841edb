package service

import "github.com/citra/storefront/internal/app/model"

// CheckIntegrity lists products whose taxonomy references no longer resolve.
// Only the first broken level of each product is reported.
func CheckIntegrity(tree model.Taxonomy, products []model.Product) []model.IntegrityWarning {
	warnings := make([]model.IntegrityWarning, 0)
	for _, p := range products {
		path := p.Path()
		resolved := tree.Resolve(path)
		if resolved == path.Depth() {
			continue
		}

		w := model.IntegrityWarning{ProductID: p.ID}
		switch resolved {
		case 0:
			w.Level, w.Reference = "category", p.Category
		case 1:
			w.Level, w.Reference = "subCategory", p.SubCategory
		default:
			w.Level, w.Reference = "subSubCategory", p.SubSubCategory
		}
		warnings = append(warnings, w)
	}
	return warnings
}
