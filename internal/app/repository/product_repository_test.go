package repository

import (
	"testing"

	"github.com/citra/storefront/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lipstick() model.Product {
	return model.Product{
		ID:          "1",
		Name:        "ROSE ALL DAY Liquid Lipstick",
		Brand:       "BEAUTY CO",
		Price:       89000,
		Category:    "makeup",
		SubCategory: "lips",
		Tags:        []string{"matte", "long-lasting"},
	}
}

func foundation() model.Product {
	return model.Product{
		ID:             "2",
		Name:           "Flawless Foundation Pro",
		Brand:          "GLOW BEAUTY",
		Price:          156000,
		Category:       "makeup",
		SubCategory:    "face",
		SubSubCategory: "foundation",
	}
}

func setupProductTest(t *testing.T, seed ...model.Product) (ProductRepository, TaxonomyRepository) {
	taxonomy, err := NewTaxonomyRepository(seedTaxonomy())
	require.NoError(t, err)

	repo, err := NewProductRepository(taxonomy, seed)
	require.NoError(t, err)
	return repo, taxonomy
}

func ids(products []model.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestProductRepository_UpsertCreates(t *testing.T) {
	repo, _ := setupProductTest(t)

	saved, created, err := repo.Upsert(lipstick())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "1", saved.ID)
	assert.Equal(t, 1, repo.Count())
}

func TestProductRepository_UpsertGeneratesID(t *testing.T) {
	repo, _ := setupProductTest(t)

	p := lipstick()
	p.ID = ""
	saved, created, err := repo.Upsert(p)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, saved.ID, 36)

	found, err := repo.FindByID(saved.ID)
	require.NoError(t, err)
	assert.Equal(t, p.Name, found.Name)
}

func TestProductRepository_UpsertReplacesWholesale(t *testing.T) {
	repo, _ := setupProductTest(t, lipstick(), foundation())

	update := model.Product{
		ID:       "1",
		Name:     "Lipstick v2",
		Brand:    "BEAUTY CO",
		Price:    99000,
		Category: "makeup",
	}
	_, created, err := repo.Upsert(update)
	require.NoError(t, err)
	assert.False(t, created)

	found, err := repo.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "Lipstick v2", found.Name)
	assert.Empty(t, found.SubCategory, "no partial merge")
	assert.Empty(t, found.Tags)
	assert.Equal(t, []string{"1", "2"}, ids(repo.GetAll()), "same category keeps position")
}

func TestProductRepository_UpsertMove(t *testing.T) {
	repo, _ := setupProductTest(t, lipstick(), foundation())

	moved := lipstick()
	moved.Category = "skincare"
	moved.SubCategory = ""
	_, created, err := repo.Upsert(moved)
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, []string{"2", "1"}, ids(repo.GetAll()))
	assert.Empty(t, repo.GetByCategory(model.CategoryPath{CategoryID: "makeup", SubCategoryID: "lips"}))
	assert.Equal(t, []string{"1"}, ids(repo.GetByCategory(model.CategoryPath{CategoryID: "skincare"})))
	assert.Equal(t, 2, repo.Count())
}

func TestProductRepository_UpsertValidation(t *testing.T) {
	repo, _ := setupProductTest(t, lipstick())

	tests := []struct {
		name   string
		mutate func(p *model.Product)
	}{
		{"missing name", func(p *model.Product) { p.Name = " " }},
		{"missing brand", func(p *model.Product) { p.Brand = "" }},
		{"missing category", func(p *model.Product) { p.Category = "" }},
		{"negative price", func(p *model.Product) { p.Price = -5 }},
		{"unknown category", func(p *model.Product) { p.Category = "haircare"; p.SubCategory = "" }},
		{"sub-category from another parent", func(p *model.Product) { p.Category = "skincare" }},
		{"unknown sub-sub-category", func(p *model.Product) { p.SubSubCategory = "gloss" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := lipstick()
			tt.mutate(&p)

			_, _, err := repo.Upsert(p)
			assert.ErrorIs(t, err, model.ErrValidation)

			stored, err := repo.FindByID("1")
			require.NoError(t, err)
			assert.Equal(t, lipstick().Name, stored.Name, "rejected upsert leaves state unchanged")
		})
	}
}

func TestProductRepository_NilResolverSkipsReferenceCheck(t *testing.T) {
	p := lipstick()
	p.Category = "haircare"
	p.SubCategory = ""

	repo, err := NewProductRepository(nil, []model.Product{p})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.Count())
}

func TestProductRepository_Remove(t *testing.T) {
	repo, _ := setupProductTest(t, lipstick(), foundation())

	assert.True(t, repo.Remove("1"))
	assert.False(t, repo.Remove("1"))
	assert.False(t, repo.Remove("missing"))
	assert.Equal(t, []string{"2"}, ids(repo.GetAll()))

	_, err := repo.FindByID("1")
	assert.ErrorIs(t, err, model.ErrNotFound)

	found, err := repo.FindByID("2")
	require.NoError(t, err)
	assert.Equal(t, "2", found.ID, "index is rebuilt after removal")
}

func TestProductRepository_GetAllIsACopy(t *testing.T) {
	repo, _ := setupProductTest(t, lipstick())

	all := repo.GetAll()
	all[0].Name = "Changed"
	all[0].Tags[0] = "glossy"

	found, err := repo.FindByID("1")
	require.NoError(t, err)
	assert.Equal(t, "ROSE ALL DAY Liquid Lipstick", found.Name)
	assert.Equal(t, "matte", found.Tags[0])
}

func TestNewProductRepository_RejectsInvalidSeed(t *testing.T) {
	taxonomy, err := NewTaxonomyRepository(seedTaxonomy())
	require.NoError(t, err)

	bad := lipstick()
	bad.Brand = ""
	_, err = NewProductRepository(taxonomy, []model.Product{bad})
	assert.ErrorIs(t, err, model.ErrValidation)
}
