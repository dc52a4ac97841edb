package model

import "strings"

type SubSubCategory struct {
	ID   string `json:"id" mapstructure:"id"`
	Name string `json:"name" mapstructure:"name"`
}

type SubCategory struct {
	ID               string           `json:"id" mapstructure:"id"`
	Name             string           `json:"name" mapstructure:"name"`
	SubSubCategories []SubSubCategory `json:"subSubCategories" mapstructure:"subSubCategories"`
}

type Category struct {
	ID            string        `json:"id" mapstructure:"id"`
	Name          string        `json:"name" mapstructure:"name"`
	Icon          string        `json:"icon" mapstructure:"icon"`
	Image         string        `json:"image" mapstructure:"image"`
	SubCategories []SubCategory `json:"subCategories" mapstructure:"subCategories"`
}

func (c Category) Clone() Category {
	out := c
	out.SubCategories = make([]SubCategory, len(c.SubCategories))
	for i, sc := range c.SubCategories {
		out.SubCategories[i] = sc.Clone()
	}
	return out
}

func (c Category) FindSubCategory(id string) (SubCategory, bool) {
	for _, sc := range c.SubCategories {
		if sc.ID == id {
			return sc, true
		}
	}
	return SubCategory{}, false
}

func (sc SubCategory) Clone() SubCategory {
	out := sc
	out.SubSubCategories = append([]SubSubCategory(nil), sc.SubSubCategories...)
	if out.SubSubCategories == nil {
		out.SubSubCategories = []SubSubCategory{}
	}
	return out
}

func (sc SubCategory) HasSubSubCategory(id string) bool {
	for _, ssc := range sc.SubSubCategories {
		if ssc.ID == id {
			return true
		}
	}
	return false
}

// CategoryPath addresses a taxonomy node; empty trailing ids stop the path early
type CategoryPath struct {
	CategoryID       string `json:"categoryId"`
	SubCategoryID    string `json:"subCategoryId,omitempty"`
	SubSubCategoryID string `json:"subSubCategoryId,omitempty"`
}

// Depth is the number of levels addressed, 0 for the root
func (p CategoryPath) Depth() int {
	switch {
	case p.CategoryID == "":
		return 0
	case p.SubCategoryID == "":
		return 1
	case p.SubSubCategoryID == "":
		return 2
	default:
		return 3
	}
}

// WellFormed reports whether every set level has its parent set
func (p CategoryPath) WellFormed() bool {
	if p.SubCategoryID != "" && p.CategoryID == "" {
		return false
	}
	if p.SubSubCategoryID != "" && p.SubCategoryID == "" {
		return false
	}
	return true
}

func (p CategoryPath) String() string {
	parts := []string{p.CategoryID}
	if p.SubCategoryID != "" {
		parts = append(parts, p.SubCategoryID)
	}
	if p.SubSubCategoryID != "" {
		parts = append(parts, p.SubSubCategoryID)
	}
	return strings.Join(parts, "/")
}

// Taxonomy is an ordered snapshot of the category tree
type Taxonomy []Category

func (t Taxonomy) Clone() Taxonomy {
	out := make(Taxonomy, len(t))
	for i, c := range t {
		out[i] = c.Clone()
	}
	return out
}

func (t Taxonomy) FindCategory(id string) (Category, bool) {
	for _, c := range t {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Resolve returns how many leading levels of p exist in the tree.
// A fully existing path resolves to p.Depth().
func (t Taxonomy) Resolve(p CategoryPath) int {
	if p.CategoryID == "" {
		return 0
	}
	cat, ok := t.FindCategory(p.CategoryID)
	if !ok {
		return 0
	}
	if p.SubCategoryID == "" {
		return 1
	}
	sub, ok := cat.FindSubCategory(p.SubCategoryID)
	if !ok {
		return 1
	}
	if p.SubSubCategoryID == "" || !sub.HasSubSubCategory(p.SubSubCategoryID) {
		return 2
	}
	return 3
}

// Exists reports whether every level of p exists
func (t Taxonomy) Exists(p CategoryPath) bool {
	return p.WellFormed() && t.Resolve(p) == p.Depth()
}

// Slugify lower-cases name and joins its whitespace-separated words with hyphens
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
