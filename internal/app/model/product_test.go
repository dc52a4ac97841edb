package model

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func validProduct() Product {
	return Product{
		ID:       "1",
		Name:     "ROSE ALL DAY Liquid Lipstick",
		Brand:    "BEAUTY CO",
		Price:    89000,
		Category: "makeup",
	}
}

func TestProduct_DiscountPercent(t *testing.T) {
	tests := []struct {
		name     string
		price    int64
		original *int64
		want     int64
	}{
		{"rounds up", 89000, int64Ptr(125000), 29},
		{"rounds down", 298000, int64Ptr(420000), 29},
		{"half off", 50, int64Ptr(100), 50},
		{"no original price", 89000, nil, 0},
		{"original not higher", 100, int64Ptr(100), 0},
		{"free item", 0, int64Ptr(100), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			p.Price = tt.price
			p.OriginalPrice = tt.original
			assert.Equal(t, tt.want, p.DiscountPercent())
		})
	}
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *Product)
		field  string
	}{
		{"missing name", func(p *Product) { p.Name = "" }, "name"},
		{"missing brand", func(p *Product) { p.Brand = "" }, "brand"},
		{"missing category", func(p *Product) { p.Category = "" }, "category"},
		{"negative price", func(p *Product) { p.Price = -1 }, "price"},
		{"rating above five", func(p *Product) { p.Rating = 5.1 }, "rating"},
		{"rating NaN", func(p *Product) { p.Rating = math.NaN() }, "rating"},
		{"rating infinite", func(p *Product) { p.Rating = math.Inf(1) }, "rating"},
		{"sub-sub without sub", func(p *Product) { p.SubSubCategory = "foundation" }, "subSubCategory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProduct()
			tt.mutate(&p)

			err := p.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))

			var ve *ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, tt.field, ve.Field)
		})
	}

	assert.NoError(t, validProduct().Validate())
}

func TestProduct_Normalize(t *testing.T) {
	p := Product{Name: "  Serum ", Tags: []string{" matte", "", "  "}}
	p.Normalize()

	assert.Equal(t, "Serum", p.Name)
	assert.Equal(t, []string{"matte"}, p.Tags)
}

func TestProduct_InPath(t *testing.T) {
	p := validProduct()
	p.SubCategory = "lips"

	assert.True(t, p.InPath(CategoryPath{}))
	assert.True(t, p.InPath(CategoryPath{CategoryID: "makeup"}))
	assert.True(t, p.InPath(CategoryPath{CategoryID: "makeup", SubCategoryID: "lips"}))
	assert.False(t, p.InPath(CategoryPath{CategoryID: "makeup", SubCategoryID: "face"}))
	assert.False(t, p.InPath(CategoryPath{CategoryID: "skincare"}))
}

func TestProduct_CloneDoesNotAlias(t *testing.T) {
	p := validProduct()
	p.Tags = []string{"matte"}
	p.OriginalPrice = int64Ptr(125000)

	c := p.Clone()
	c.Tags[0] = "glossy"
	*c.OriginalPrice = 1

	assert.Equal(t, "matte", p.Tags[0])
	assert.Equal(t, int64(125000), *p.OriginalPrice)
}

func TestErrors_MatchSentinels(t *testing.T) {
	assert.ErrorIs(t, &DuplicateIDError{Scope: "categories", ID: "makeup"}, ErrDuplicateID)
	assert.ErrorIs(t, &NotFoundError{Kind: "product", ID: "9"}, ErrNotFound)
	assert.NotErrorIs(t, &NotFoundError{Kind: "product", ID: "9"}, ErrValidation)
	assert.EqualError(t, NewValidationError("name", "is required"), "invalid name: is required")
}
