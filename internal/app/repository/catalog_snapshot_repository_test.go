package repository

import (
	"testing"

	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupSnapshotTest(t *testing.T) (*gorm.DB, CatalogSnapshotRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return testDB, NewCatalogSnapshotRepository(testDB)
}

func testSnapshot() model.CatalogSnapshot {
	original := int64(125000)
	p := lipstick()
	p.OriginalPrice = &original
	p.Rating = 4.8
	p.ReviewCount = 1240
	p.IsBestseller = true

	f := foundation()
	f.Tags = []string{}

	return model.CatalogSnapshot{
		Categories: seedTaxonomy(),
		Products:   []model.Product{p, f},
		Banners:    []string{"b1.jpg", "b2.jpg"},
	}
}

func TestCatalogSnapshotRepository_LoadEmpty(t *testing.T) {
	_, repo := setupSnapshotTest(t)

	snapshot, err := repo.Load()
	require.NoError(t, err)
	assert.True(t, snapshot.IsEmpty())
}

func TestCatalogSnapshotRepository_RoundTrip(t *testing.T) {
	_, repo := setupSnapshotTest(t)
	want := testSnapshot()

	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, want.Categories, got.Categories)
	assert.Equal(t, want.Banners, got.Banners)
	require.Len(t, got.Products, 2)
	assert.Equal(t, want.Products[0], got.Products[0])
	assert.Equal(t, "2", got.Products[1].ID)
	assert.Empty(t, got.Products[1].Tags)
}

func TestCatalogSnapshotRepository_SaveReplaces(t *testing.T) {
	testDB, repo := setupSnapshotTest(t)

	require.NoError(t, repo.Save(testSnapshot()))

	smaller := testSnapshot()
	smaller.Categories = smaller.Categories[:1]
	smaller.Products = smaller.Products[1:]
	smaller.Banners = nil
	require.NoError(t, repo.Save(smaller))

	var count int64
	testDB.Model(&model.CategoryRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)
	testDB.Model(&model.ProductRecord{}).Count(&count)
	assert.Equal(t, int64(1), count)
	testDB.Model(&model.BannerRecord{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCatalogSnapshotRepository_SaveProductsKeepsTaxonomy(t *testing.T) {
	_, repo := setupSnapshotTest(t)
	require.NoError(t, repo.Save(testSnapshot()))

	require.NoError(t, repo.SaveProducts([]model.Product{foundation()}))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Len(t, got.Categories, 2)
	assert.Len(t, got.Banners, 2)
	assert.Equal(t, []string{"2"}, ids(got.Products))
}
