package service

import (
	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/pkg/logger"
)

// SelectionService is the navigation state machine.
// Selecting the currently selected id at any level toggles that level off,
// and changing a level always clears the levels below it.
type SelectionService interface {
	Current() model.Selection
	SelectCategory(categoryID string) model.Selection
	SelectSubCategory(subCategoryID string) (model.Selection, error)
	SelectSubSubCategory(subSubCategoryID string) (model.Selection, error)
	SetSearch(text string) model.Selection
	Navigate(path model.CategoryPath) (model.Selection, error)
	Reset() model.Selection
	Reconcile(tree model.Taxonomy) bool
}

type selectionService struct {
	sel model.Selection
}

func NewSelectionService() SelectionService {
	return &selectionService{}
}

func (s *selectionService) Current() model.Selection {
	return s.sel
}

func (s *selectionService) SelectCategory(categoryID string) model.Selection {
	if categoryID == "" || categoryID == s.sel.CategoryID {
		s.sel.CategoryID = ""
	} else {
		s.sel.CategoryID = categoryID
	}
	s.sel.SubCategoryID = ""
	s.sel.SubSubCategoryID = ""
	return s.sel
}

func (s *selectionService) SelectSubCategory(subCategoryID string) (model.Selection, error) {
	if s.sel.CategoryID == "" {
		return s.sel, model.NewValidationError("categoryId", "must be selected before a sub-category")
	}
	if subCategoryID == "" || subCategoryID == s.sel.SubCategoryID {
		s.sel.SubCategoryID = ""
	} else {
		s.sel.SubCategoryID = subCategoryID
	}
	s.sel.SubSubCategoryID = ""
	return s.sel, nil
}

func (s *selectionService) SelectSubSubCategory(subSubCategoryID string) (model.Selection, error) {
	if s.sel.SubCategoryID == "" {
		return s.sel, model.NewValidationError("subCategoryId", "must be selected before a sub-sub-category")
	}
	if subSubCategoryID == s.sel.SubSubCategoryID {
		s.sel.SubSubCategoryID = ""
	} else {
		s.sel.SubSubCategoryID = subSubCategoryID
	}
	return s.sel, nil
}

// SetSearch leaves the category levels untouched
func (s *selectionService) SetSearch(text string) model.Selection {
	s.sel.SearchQuery = text
	return s.sel
}

// Navigate jumps straight to path without toggling; the search text is kept
func (s *selectionService) Navigate(path model.CategoryPath) (model.Selection, error) {
	if !path.WellFormed() {
		return s.sel, model.NewValidationError("path", "each level requires its parent")
	}
	s.sel.CategoryID = path.CategoryID
	s.sel.SubCategoryID = path.SubCategoryID
	s.sel.SubSubCategoryID = path.SubSubCategoryID
	return s.sel, nil
}

func (s *selectionService) Reset() model.Selection {
	s.sel = model.Selection{}
	return s.sel
}

// Reconcile truncates the selection to its longest prefix that still exists in tree.
// It reports whether anything was cleared.
func (s *selectionService) Reconcile(tree model.Taxonomy) bool {
	path := s.sel.Path()
	resolved := tree.Resolve(path)
	if resolved == path.Depth() {
		return false
	}

	before := s.sel
	switch resolved {
	case 0:
		s.sel.CategoryID = ""
		s.sel.SubCategoryID = ""
		s.sel.SubSubCategoryID = ""
	case 1:
		s.sel.SubCategoryID = ""
		s.sel.SubSubCategoryID = ""
	case 2:
		s.sel.SubSubCategoryID = ""
	}

	logger.Debug("Selection reconciled", logger.Fields{
		"before": before.Path().String(),
		"after":  s.sel.Path().String(),
	})
	return true
}
