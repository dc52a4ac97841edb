package model

// Selection is the navigation position plus free-text search
type Selection struct {
	CategoryID       string `json:"categoryId,omitempty"`
	SubCategoryID    string `json:"subCategoryId,omitempty"`
	SubSubCategoryID string `json:"subSubCategoryId,omitempty"`
	SearchQuery      string `json:"searchQuery"`
}

func (s Selection) Path() CategoryPath {
	return CategoryPath{
		CategoryID:       s.CategoryID,
		SubCategoryID:    s.SubCategoryID,
		SubSubCategoryID: s.SubSubCategoryID,
	}
}
