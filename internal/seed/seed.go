// Package seed supplies the catalog a storefront starts with.
package seed

import (
	"fmt"

	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/pkg/logger"
	"github.com/spf13/viper"
)

// LoadFile reads a yaml, json or toml catalog document. Unknown keys are rejected.
//
//	categories:
//	  - id: makeup
//	    name: Makeup
//	    icon: "💄"
//	    image: https://...
//	    subCategories: [...]
//	products: [...]
//	banners: [...]
func LoadFile(path string) (model.CatalogSnapshot, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return model.CatalogSnapshot{}, fmt.Errorf("read seed file %s: %w", path, err)
	}

	var snapshot model.CatalogSnapshot
	if err := v.UnmarshalExact(&snapshot); err != nil {
		return model.CatalogSnapshot{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	logger.Info("Seed file loaded", logger.Fields{
		"path":       path,
		"categories": len(snapshot.Categories),
		"products":   len(snapshot.Products),
		"banners":    len(snapshot.Banners),
	})
	return snapshot, nil
}

func int64Ptr(v int64) *int64 {
	return &v
}

// Default is the built-in catalog: two categories, three products and three banners
func Default() model.CatalogSnapshot {
	return model.CatalogSnapshot{
		Banners: []string{
			"https://images.unsplash.com/photo-1596462502278-27bfdc403348?w=1200&h=400&fit=crop&q=80",
			"https://images.unsplash.com/photo-1556912933-91f855057811?w=1200&h=400&fit=crop&q=80",
			"https://images.unsplash.com/photo-1570172619644-dfd03ed5d881?w=1200&h=400&fit=crop&q=80",
		},
		Categories: model.Taxonomy{
			{
				ID:    "makeup",
				Name:  "Makeup",
				Icon:  "💄",
				Image: "https://images.unsplash.com/photo-1512496015851-a90fb38ba796?w=400&h=400&fit=crop",
				SubCategories: []model.SubCategory{
					{ID: "face", Name: "Face", SubSubCategories: []model.SubSubCategory{
						{ID: "foundation", Name: "Foundation"},
						{ID: "cushion", Name: "Cushion"},
					}},
					{ID: "eyes", Name: "Eyes", SubSubCategories: []model.SubSubCategory{}},
					{ID: "lips", Name: "Lips", SubSubCategories: []model.SubSubCategory{}},
				},
			},
			{
				ID:    "skincare",
				Name:  "Skincare",
				Icon:  "✨",
				Image: "https://images.unsplash.com/photo-1556228852-6d45a7d8e821?w=400&h=400&fit=crop",
				SubCategories: []model.SubCategory{
					{ID: "cleanser", Name: "Cleanser", SubSubCategories: []model.SubSubCategory{}},
					{ID: "moisturizer", Name: "Moisturizer", SubSubCategories: []model.SubSubCategory{}},
					{ID: "serum", Name: "Serum", SubSubCategories: []model.SubSubCategory{}},
				},
			},
		},
		Products: []model.Product{
			{
				ID:            "1",
				Name:          "ROSE ALL DAY Liquid Lipstick",
				Brand:         "BEAUTY CO",
				Price:         89000,
				OriginalPrice: int64Ptr(125000),
				Rating:        4.8,
				ReviewCount:   1240,
				ImageURL:      "https://images.unsplash.com/photo-1586495777744-4413f21062fa?w=400&h=400&fit=crop",
				IsBestseller:  true,
				Category:      "makeup",
				SubCategory:   "lips",
				Description:   "Lipstik cair matte tahan lama.",
				Tags:          []string{"matte", "long-lasting"},
			},
			{
				ID:             "2",
				Name:           "Flawless Foundation Pro",
				Brand:          "GLOW BEAUTY",
				Price:          156000,
				OriginalPrice:  int64Ptr(220000),
				Rating:         4.7,
				ReviewCount:    856,
				ImageURL:       "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?w=400&h=400&fit=crop",
				IsNew:          true,
				Category:       "makeup",
				SubCategory:    "face",
				SubSubCategory: "foundation",
				Description:    "Foundation cakupan penuh.",
				Tags:           []string{"full-coverage", "oil-free"},
			},
			{
				ID:            "4",
				Name:          "Vitamin C Brightening Serum",
				Brand:         "CLEAN SKIN",
				Price:         298000,
				OriginalPrice: int64Ptr(420000),
				Rating:        4.6,
				ReviewCount:   1890,
				ImageURL:      "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=400&h=400&fit=crop",
				IsNew:         true,
				IsBestseller:  true,
				Category:      "skincare",
				SubCategory:   "serum",
				Description:   "Serum pencerah Vitamin C.",
				Tags:          []string{"brightening", "antioxidant"},
			},
		},
	}
}
