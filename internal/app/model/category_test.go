package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testTaxonomy() Taxonomy {
	return Taxonomy{
		{
			ID: "makeup", Name: "Makeup", Icon: "💄", Image: "makeup.jpg",
			SubCategories: []SubCategory{
				{ID: "face", Name: "Face", SubSubCategories: []SubSubCategory{{ID: "foundation", Name: "Foundation"}}},
				{ID: "lips", Name: "Lips", SubSubCategories: []SubSubCategory{}},
			},
		},
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single word", "Makeup", "makeup"},
		{"two words", "Body Care", "body-care"},
		{"collapses whitespace", "  Body \t  Care  ", "body-care"},
		{"keeps punctuation", "Men's Grooming", "men's-grooming"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestTaxonomy_Resolve(t *testing.T) {
	tree := testTaxonomy()

	assert.Equal(t, 0, tree.Resolve(CategoryPath{}))
	assert.Equal(t, 0, tree.Resolve(CategoryPath{CategoryID: "skincare"}))
	assert.Equal(t, 1, tree.Resolve(CategoryPath{CategoryID: "makeup"}))
	assert.Equal(t, 1, tree.Resolve(CategoryPath{CategoryID: "makeup", SubCategoryID: "eyes"}))
	assert.Equal(t, 2, tree.Resolve(CategoryPath{CategoryID: "makeup", SubCategoryID: "lips"}))
	assert.Equal(t, 2, tree.Resolve(CategoryPath{CategoryID: "makeup", SubCategoryID: "face", SubSubCategoryID: "cushion"}))
	assert.Equal(t, 3, tree.Resolve(CategoryPath{CategoryID: "makeup", SubCategoryID: "face", SubSubCategoryID: "foundation"}))
}

func TestTaxonomy_Exists(t *testing.T) {
	tree := testTaxonomy()

	assert.True(t, tree.Exists(CategoryPath{}))
	assert.True(t, tree.Exists(CategoryPath{CategoryID: "makeup", SubCategoryID: "face", SubSubCategoryID: "foundation"}))
	assert.False(t, tree.Exists(CategoryPath{CategoryID: "makeup", SubCategoryID: "eyes"}))
	assert.False(t, tree.Exists(CategoryPath{SubCategoryID: "face"}), "orphan level is never addressable")
}

func TestTaxonomy_CloneIsDeep(t *testing.T) {
	tree := testTaxonomy()
	clone := tree.Clone()

	clone[0].SubCategories[0].SubSubCategories[0].Name = "Changed"
	clone[0].SubCategories = append(clone[0].SubCategories, SubCategory{ID: "eyes"})

	assert.Equal(t, "Foundation", tree[0].SubCategories[0].SubSubCategories[0].Name)
	assert.Len(t, tree[0].SubCategories, 2)
}

func TestCategoryPath(t *testing.T) {
	p := CategoryPath{CategoryID: "makeup", SubCategoryID: "face"}
	assert.Equal(t, 2, p.Depth())
	assert.True(t, p.WellFormed())
	assert.Equal(t, "makeup/face", p.String())

	bad := CategoryPath{CategoryID: "makeup", SubSubCategoryID: "foundation"}
	assert.False(t, bad.WellFormed())
}
