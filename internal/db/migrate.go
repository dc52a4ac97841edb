package db

import (
	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/pkg/logger"
	"gorm.io/gorm"
)

var catalogModels = []interface{}{
	&model.CategoryRecord{},
	&model.SubCategoryRecord{},
	&model.SubSubCategoryRecord{},
	&model.ProductRecord{},
	&model.BannerRecord{},
}

// Migrate runs catalog migrations on the global connection
func Migrate() error {
	return MigrateCatalog(DB)
}

func MigrateCatalog(db *gorm.DB) error {
	logger.Info("Running catalog migrations...")

	if err := db.AutoMigrate(catalogModels...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	logger.Info("Catalog migrations completed successfully", logger.Fields{
		"models_count": len(catalogModels),
	})
	return nil
}
