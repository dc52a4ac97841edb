package model

// CatalogSnapshot is the seed/persisted form of the shared catalog
type CatalogSnapshot struct {
	Categories Taxonomy  `json:"categories" mapstructure:"categories"`
	Products   []Product `json:"products" mapstructure:"products"`
	Banners    []string  `json:"banners" mapstructure:"banners"`
}

func (s CatalogSnapshot) IsEmpty() bool {
	return len(s.Categories) == 0 && len(s.Products) == 0 && len(s.Banners) == 0
}
