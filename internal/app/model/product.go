package model

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const MaxRating = 5

type Product struct {
	ID             string   `json:"id" mapstructure:"id"`
	Name           string   `json:"name" mapstructure:"name"`
	Brand          string   `json:"brand" mapstructure:"brand"`
	Price          int64    `json:"price" mapstructure:"price"` // smallest currency unit
	OriginalPrice  *int64   `json:"originalPrice,omitempty" mapstructure:"originalPrice"`
	Rating         float64  `json:"rating" mapstructure:"rating"`
	ReviewCount    int      `json:"reviewCount" mapstructure:"reviewCount"`
	ImageURL       string   `json:"imageUrl" mapstructure:"imageUrl"`
	IsNew          bool     `json:"isNew" mapstructure:"isNew"`
	IsBestseller   bool     `json:"isBestseller" mapstructure:"isBestseller"`
	Category       string   `json:"category" mapstructure:"category"`
	SubCategory    string   `json:"subCategory,omitempty" mapstructure:"subCategory"`
	SubSubCategory string   `json:"subSubCategory,omitempty" mapstructure:"subSubCategory"`
	Tags           []string `json:"tags" mapstructure:"tags"`
	Description    string   `json:"description" mapstructure:"description"`
}

func (p Product) Path() CategoryPath {
	return CategoryPath{
		CategoryID:       p.Category,
		SubCategoryID:    p.SubCategory,
		SubSubCategoryID: p.SubSubCategory,
	}
}

// Clone returns a copy that shares no slices or pointers with p
func (p Product) Clone() Product {
	out := p
	out.Tags = append([]string(nil), p.Tags...)
	if out.Tags == nil {
		out.Tags = []string{}
	}
	if p.OriginalPrice != nil {
		v := *p.OriginalPrice
		out.OriginalPrice = &v
	}
	return out
}

func (p Product) HasDiscount() bool {
	return p.OriginalPrice != nil && *p.OriginalPrice > p.Price && p.Price > 0
}

// DiscountPercent is the rounded percentage saved against OriginalPrice, 0 without a discount
func (p Product) DiscountPercent() int64 {
	if !p.HasDiscount() {
		return 0
	}
	orig := decimal.NewFromInt(*p.OriginalPrice)
	saved := orig.Sub(decimal.NewFromInt(p.Price))
	return saved.Div(orig).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
}

// Normalize trims text fields and drops blank tags
func (p *Product) Normalize() {
	p.ID = strings.TrimSpace(p.ID)
	p.Name = strings.TrimSpace(p.Name)
	p.Brand = strings.TrimSpace(p.Brand)
	p.Category = strings.TrimSpace(p.Category)
	p.SubCategory = strings.TrimSpace(p.SubCategory)
	p.SubSubCategory = strings.TrimSpace(p.SubSubCategory)
	p.ImageURL = strings.TrimSpace(p.ImageURL)

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	p.Tags = tags
}

// Validate checks the record shape. Taxonomy references are checked by the product store.
func (p Product) Validate() error {
	switch {
	case p.ID == "":
		return NewValidationError("id", "is required")
	case p.Name == "":
		return NewValidationError("name", "is required")
	case p.Brand == "":
		return NewValidationError("brand", "is required")
	case p.Category == "":
		return NewValidationError("category", "is required")
	case p.Price < 0:
		return NewValidationError("price", "must be a non-negative integer")
	case p.OriginalPrice != nil && *p.OriginalPrice < 0:
		return NewValidationError("originalPrice", "must be a non-negative integer")
	case math.IsNaN(p.Rating) || p.Rating < 0 || p.Rating > MaxRating:
		return NewValidationError("rating", "must be between 0 and 5")
	case p.ReviewCount < 0:
		return NewValidationError("reviewCount", "must be non-negative")
	case !p.Path().WellFormed():
		return NewValidationError("subSubCategory", "requires subCategory")
	}
	return nil
}

// InPath reports whether p matches every level set in path.
// A dangling reference on p simply fails to match that level.
func (p Product) InPath(path CategoryPath) bool {
	if path.CategoryID != "" && p.Category != path.CategoryID {
		return false
	}
	if path.SubCategoryID != "" && p.SubCategory != path.SubCategoryID {
		return false
	}
	if path.SubSubCategoryID != "" && p.SubSubCategory != path.SubSubCategoryID {
		return false
	}
	return true
}
