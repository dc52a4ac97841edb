package model

import (
	"time"

	"github.com/lib/pq"
)

// Persisted catalog rows. Position keeps the in-memory ordering.

type CategoryRecord struct {
	ID       string `gorm:"primaryKey;type:varchar(100)"`
	Position int    `gorm:"not null"`
	Name     string `gorm:"not null"`
	Icon     string `gorm:"not null"`
	Image    string `gorm:"not null"`
}

func (CategoryRecord) TableName() string {
	return "catalog_categories"
}

type SubCategoryRecord struct {
	CategoryID string `gorm:"primaryKey;type:varchar(100)"`
	ID         string `gorm:"primaryKey;type:varchar(100)"`
	Position   int    `gorm:"not null"`
	Name       string `gorm:"not null"`
}

func (SubCategoryRecord) TableName() string {
	return "catalog_sub_categories"
}

type SubSubCategoryRecord struct {
	CategoryID    string `gorm:"primaryKey;type:varchar(100)"`
	SubCategoryID string `gorm:"primaryKey;type:varchar(100)"`
	ID            string `gorm:"primaryKey;type:varchar(100)"`
	Position      int    `gorm:"not null"`
	Name          string `gorm:"not null"`
}

func (SubSubCategoryRecord) TableName() string {
	return "catalog_sub_sub_categories"
}

type ProductRecord struct {
	ID             string `gorm:"primaryKey;type:varchar(100)"`
	Position       int    `gorm:"not null;index"`
	Name           string `gorm:"not null"`
	Brand          string `gorm:"not null"`
	Price          int64  `gorm:"not null"`
	OriginalPrice  *int64
	Rating         float64
	ReviewCount    int
	ImageURL       string
	IsNew          bool
	IsBestseller   bool
	Category       string         `gorm:"type:varchar(100);not null;index"`
	SubCategory    string         `gorm:"type:varchar(100)"`
	SubSubCategory string         `gorm:"type:varchar(100)"`
	Tags           pq.StringArray `gorm:"type:text"` // array literal, readable by postgres and sqlite
	Description    string         `gorm:"type:text"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ProductRecord) TableName() string {
	return "catalog_products"
}

func NewProductRecord(p Product, position int) ProductRecord {
	return ProductRecord{
		ID:             p.ID,
		Position:       position,
		Name:           p.Name,
		Brand:          p.Brand,
		Price:          p.Price,
		OriginalPrice:  p.Clone().OriginalPrice,
		Rating:         p.Rating,
		ReviewCount:    p.ReviewCount,
		ImageURL:       p.ImageURL,
		IsNew:          p.IsNew,
		IsBestseller:   p.IsBestseller,
		Category:       p.Category,
		SubCategory:    p.SubCategory,
		SubSubCategory: p.SubSubCategory,
		Tags:           pq.StringArray(append([]string{}, p.Tags...)),
		Description:    p.Description,
	}
}

func (r ProductRecord) ToProduct() Product {
	return Product{
		ID:             r.ID,
		Name:           r.Name,
		Brand:          r.Brand,
		Price:          r.Price,
		OriginalPrice:  r.OriginalPrice,
		Rating:         r.Rating,
		ReviewCount:    r.ReviewCount,
		ImageURL:       r.ImageURL,
		IsNew:          r.IsNew,
		IsBestseller:   r.IsBestseller,
		Category:       r.Category,
		SubCategory:    r.SubCategory,
		SubSubCategory: r.SubSubCategory,
		Tags:           append([]string{}, r.Tags...),
		Description:    r.Description,
	}
}

type BannerRecord struct {
	Position int    `gorm:"primaryKey;autoIncrement:false"`
	ImageURL string `gorm:"not null"`
}

func (BannerRecord) TableName() string {
	return "catalog_banners"
}
