package repository

import (
	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/pkg/logger"
	"gorm.io/gorm"
)

// CatalogSnapshotRepository persists the shared catalog as a whole
type CatalogSnapshotRepository interface {
	Save(snapshot model.CatalogSnapshot) error
	Load() (model.CatalogSnapshot, error)
	SaveProducts(products []model.Product) error
}

type catalogSnapshotRepository struct {
	db *gorm.DB
}

func NewCatalogSnapshotRepository(db *gorm.DB) CatalogSnapshotRepository {
	return &catalogSnapshotRepository{db: db}
}

// Save replaces every stored catalog row inside one transaction
func (r *catalogSnapshotRepository) Save(snapshot model.CatalogSnapshot) error {
	logger.Debug("Saving catalog snapshot to database", logger.Fields{
		"categories": len(snapshot.Categories),
		"products":   len(snapshot.Products),
		"banners":    len(snapshot.Banners),
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range []interface{}{
			&model.CategoryRecord{},
			&model.SubCategoryRecord{},
			&model.SubSubCategoryRecord{},
			&model.ProductRecord{},
			&model.BannerRecord{},
		} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
				return err
			}
		}

		var (
			cats    []model.CategoryRecord
			subs    []model.SubCategoryRecord
			subSubs []model.SubSubCategoryRecord
		)
		for ci, c := range snapshot.Categories {
			cats = append(cats, model.CategoryRecord{ID: c.ID, Position: ci, Name: c.Name, Icon: c.Icon, Image: c.Image})
			for si, sc := range c.SubCategories {
				subs = append(subs, model.SubCategoryRecord{CategoryID: c.ID, ID: sc.ID, Position: si, Name: sc.Name})
				for ssi, ssc := range sc.SubSubCategories {
					subSubs = append(subSubs, model.SubSubCategoryRecord{
						CategoryID:    c.ID,
						SubCategoryID: sc.ID,
						ID:            ssc.ID,
						Position:      ssi,
						Name:          ssc.Name,
					})
				}
			}
		}
		if len(cats) > 0 {
			if err := tx.Create(&cats).Error; err != nil {
				return err
			}
		}
		if len(subs) > 0 {
			if err := tx.Create(&subs).Error; err != nil {
				return err
			}
		}
		if len(subSubs) > 0 {
			if err := tx.Create(&subSubs).Error; err != nil {
				return err
			}
		}
		if err := createProducts(tx, snapshot.Products); err != nil {
			return err
		}

		banners := make([]model.BannerRecord, 0, len(snapshot.Banners))
		for i, b := range snapshot.Banners {
			banners = append(banners, model.BannerRecord{Position: i, ImageURL: b})
		}
		if len(banners) > 0 {
			return tx.Create(&banners).Error
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to save catalog snapshot to database", err)
		return err
	}

	logger.Info("Catalog snapshot saved to database", logger.Fields{
		"categories": len(snapshot.Categories),
		"products":   len(snapshot.Products),
	})
	return nil
}

// SaveProducts replaces the stored products only, keeping taxonomy and banners
func (r *catalogSnapshotRepository) SaveProducts(products []model.Product) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ProductRecord{}).Error; err != nil {
			return err
		}
		return createProducts(tx, products)
	})
	if err != nil {
		logger.Error("Failed to save products to database", err, logger.Fields{
			"count": len(products),
		})
		return err
	}
	logger.Info("Products saved to database", logger.Fields{
		"count": len(products),
	})
	return nil
}

func createProducts(tx *gorm.DB, products []model.Product) error {
	if len(products) == 0 {
		return nil
	}
	records := make([]model.ProductRecord, 0, len(products))
	for i, p := range products {
		records = append(records, model.NewProductRecord(p, i))
	}
	return tx.CreateInBatches(&records, 500).Error
}

func (r *catalogSnapshotRepository) Load() (model.CatalogSnapshot, error) {
	var (
		cats     []model.CategoryRecord
		subs     []model.SubCategoryRecord
		subSubs  []model.SubSubCategoryRecord
		products []model.ProductRecord
		banners  []model.BannerRecord
	)
	queries := []struct {
		dest  interface{}
		order string
	}{
		{&cats, "position"},
		{&subs, "category_id, position"},
		{&subSubs, "category_id, sub_category_id, position"},
		{&products, "position"},
		{&banners, "position"},
	}
	for _, q := range queries {
		if err := r.db.Order(q.order).Find(q.dest).Error; err != nil {
			logger.Error("Failed to load catalog snapshot from database", err)
			return model.CatalogSnapshot{}, err
		}
	}

	type subKey struct{ cat, sub string }
	subSubsByParent := make(map[subKey][]model.SubSubCategory)
	for _, ssc := range subSubs {
		k := subKey{ssc.CategoryID, ssc.SubCategoryID}
		subSubsByParent[k] = append(subSubsByParent[k], model.SubSubCategory{ID: ssc.ID, Name: ssc.Name})
	}
	subsByParent := make(map[string][]model.SubCategory)
	for _, sc := range subs {
		children := subSubsByParent[subKey{sc.CategoryID, sc.ID}]
		if children == nil {
			children = []model.SubSubCategory{}
		}
		subsByParent[sc.CategoryID] = append(subsByParent[sc.CategoryID], model.SubCategory{
			ID:               sc.ID,
			Name:             sc.Name,
			SubSubCategories: children,
		})
	}

	snapshot := model.CatalogSnapshot{
		Categories: make(model.Taxonomy, 0, len(cats)),
		Products:   make([]model.Product, 0, len(products)),
		Banners:    make([]string, 0, len(banners)),
	}
	for _, c := range cats {
		children := subsByParent[c.ID]
		if children == nil {
			children = []model.SubCategory{}
		}
		snapshot.Categories = append(snapshot.Categories, model.Category{
			ID:            c.ID,
			Name:          c.Name,
			Icon:          c.Icon,
			Image:         c.Image,
			SubCategories: children,
		})
	}
	for _, p := range products {
		snapshot.Products = append(snapshot.Products, p.ToProduct())
	}
	for _, b := range banners {
		snapshot.Banners = append(snapshot.Banners, b.ImageURL)
	}

	logger.Debug("Catalog snapshot loaded from database", logger.Fields{
		"categories": len(snapshot.Categories),
		"products":   len(snapshot.Products),
	})
	return snapshot, nil
}
