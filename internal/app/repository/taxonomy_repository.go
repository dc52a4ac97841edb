package repository

import (
	"strings"

	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/pkg/logger"
)

// TaxonomyListener is called with a fresh snapshot after every structural change
type TaxonomyListener func(tree model.Taxonomy)

type TaxonomyRepository interface {
	Tree() model.Taxonomy
	FindCategory(id string) (model.Category, error)
	FindSubCategory(categoryID, subCategoryID string) (model.SubCategory, error)
	Exists(path model.CategoryPath) bool
	AddCategory(name, icon, image string) (model.Category, error)
	AddSubCategory(categoryID, name string) (model.SubCategory, error)
	AddSubSubCategory(categoryID, subCategoryID, name string) (model.SubSubCategory, error)
	RemoveCategory(categoryID string) bool
	RemoveSubCategory(categoryID, subCategoryID string) bool
	RemoveSubSubCategory(categoryID, subCategoryID, subSubCategoryID string) bool
	Subscribe(listener TaxonomyListener)
}

type taxonomyRepository struct {
	tree      model.Taxonomy
	listeners []TaxonomyListener
}

// NewTaxonomyRepository validates seed and takes a private copy of it
func NewTaxonomyRepository(seed model.Taxonomy) (TaxonomyRepository, error) {
	if err := validateTaxonomy(seed); err != nil {
		logger.Warn("Rejected taxonomy seed", logger.Fields{
			"error": err.Error(),
		})
		return nil, err
	}
	return &taxonomyRepository{tree: seed.Clone()}, nil
}

func validateTaxonomy(tree model.Taxonomy) error {
	catIDs := make(map[string]bool)
	for _, c := range tree {
		if err := requireFields(map[string]string{"id": c.ID, "name": c.Name, "icon": c.Icon, "image": c.Image}); err != nil {
			return err
		}
		if catIDs[c.ID] {
			return &model.DuplicateIDError{Scope: "categories", ID: c.ID}
		}
		catIDs[c.ID] = true

		subIDs := make(map[string]bool)
		for _, sc := range c.SubCategories {
			if err := requireFields(map[string]string{"id": sc.ID, "name": sc.Name}); err != nil {
				return err
			}
			if subIDs[sc.ID] {
				return &model.DuplicateIDError{Scope: c.ID, ID: sc.ID}
			}
			subIDs[sc.ID] = true

			sscIDs := make(map[string]bool)
			for _, ssc := range sc.SubSubCategories {
				if err := requireFields(map[string]string{"id": ssc.ID, "name": ssc.Name}); err != nil {
					return err
				}
				if sscIDs[ssc.ID] {
					return &model.DuplicateIDError{Scope: c.ID + "/" + sc.ID, ID: ssc.ID}
				}
				sscIDs[ssc.ID] = true
			}
		}
	}
	return nil
}

func requireFields(fields map[string]string) error {
	// fixed order keeps the reported field deterministic
	for _, name := range []string{"id", "name", "icon", "image"} {
		v, ok := fields[name]
		if ok && strings.TrimSpace(v) == "" {
			return model.NewValidationError(name, "is required")
		}
	}
	return nil
}

func (r *taxonomyRepository) Tree() model.Taxonomy {
	return r.tree.Clone()
}

func (r *taxonomyRepository) Exists(path model.CategoryPath) bool {
	return r.tree.Exists(path)
}

func (r *taxonomyRepository) categoryIndex(id string) int {
	for i, c := range r.tree {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (r *taxonomyRepository) subCategoryIndex(ci int, id string) int {
	for i, sc := range r.tree[ci].SubCategories {
		if sc.ID == id {
			return i
		}
	}
	return -1
}

func (r *taxonomyRepository) FindCategory(id string) (model.Category, error) {
	ci := r.categoryIndex(id)
	if ci < 0 {
		return model.Category{}, &model.NotFoundError{Kind: "category", ID: id}
	}
	return r.tree[ci].Clone(), nil
}

func (r *taxonomyRepository) FindSubCategory(categoryID, subCategoryID string) (model.SubCategory, error) {
	ci := r.categoryIndex(categoryID)
	if ci < 0 {
		return model.SubCategory{}, &model.NotFoundError{Kind: "category", ID: categoryID}
	}
	si := r.subCategoryIndex(ci, subCategoryID)
	if si < 0 {
		return model.SubCategory{}, &model.NotFoundError{Kind: "sub-category", ID: categoryID + "/" + subCategoryID}
	}
	return r.tree[ci].SubCategories[si].Clone(), nil
}

func (r *taxonomyRepository) AddCategory(name, icon, image string) (model.Category, error) {
	name, icon, image = strings.TrimSpace(name), strings.TrimSpace(icon), strings.TrimSpace(image)
	logger.Debug("Adding category", logger.Fields{
		"name": name,
	})

	if err := requireFields(map[string]string{"name": name, "icon": icon, "image": image}); err != nil {
		logger.Warn("Cannot add category: validation failed", logger.Fields{
			"name":  name,
			"error": err.Error(),
		})
		return model.Category{}, err
	}

	id := model.Slugify(name)
	if r.categoryIndex(id) >= 0 {
		logger.Warn("Cannot add category: duplicate id", logger.Fields{
			"category_id": id,
		})
		return model.Category{}, &model.DuplicateIDError{Scope: "categories", ID: id}
	}

	cat := model.Category{
		ID:            id,
		Name:          name,
		Icon:          icon,
		Image:         image,
		SubCategories: []model.SubCategory{},
	}
	r.tree = append(r.tree, cat)
	r.notify()

	logger.Info("Category added", logger.Fields{
		"category_id": id,
	})
	return cat.Clone(), nil
}

func (r *taxonomyRepository) AddSubCategory(categoryID, name string) (model.SubCategory, error) {
	name = strings.TrimSpace(name)
	logger.Debug("Adding sub-category", logger.Fields{
		"category_id": categoryID,
		"name":        name,
	})

	if name == "" {
		return model.SubCategory{}, model.NewValidationError("name", "is required")
	}
	ci := r.categoryIndex(categoryID)
	if ci < 0 {
		logger.Warn("Cannot add sub-category: category not found", logger.Fields{
			"category_id": categoryID,
		})
		return model.SubCategory{}, &model.NotFoundError{Kind: "category", ID: categoryID}
	}

	id := model.Slugify(name)
	if r.subCategoryIndex(ci, id) >= 0 {
		logger.Warn("Cannot add sub-category: duplicate id", logger.Fields{
			"category_id":     categoryID,
			"sub_category_id": id,
		})
		return model.SubCategory{}, &model.DuplicateIDError{Scope: categoryID, ID: id}
	}

	sub := model.SubCategory{ID: id, Name: name, SubSubCategories: []model.SubSubCategory{}}
	r.tree[ci].SubCategories = append(r.tree[ci].SubCategories, sub)
	r.notify()

	logger.Info("Sub-category added", logger.Fields{
		"category_id":     categoryID,
		"sub_category_id": id,
	})
	return sub.Clone(), nil
}

func (r *taxonomyRepository) AddSubSubCategory(categoryID, subCategoryID, name string) (model.SubSubCategory, error) {
	name = strings.TrimSpace(name)
	logger.Debug("Adding sub-sub-category", logger.Fields{
		"category_id":     categoryID,
		"sub_category_id": subCategoryID,
		"name":            name,
	})

	if name == "" {
		return model.SubSubCategory{}, model.NewValidationError("name", "is required")
	}
	ci := r.categoryIndex(categoryID)
	if ci < 0 {
		return model.SubSubCategory{}, &model.NotFoundError{Kind: "category", ID: categoryID}
	}
	si := r.subCategoryIndex(ci, subCategoryID)
	if si < 0 {
		return model.SubSubCategory{}, &model.NotFoundError{Kind: "sub-category", ID: categoryID + "/" + subCategoryID}
	}

	id := model.Slugify(name)
	sub := &r.tree[ci].SubCategories[si]
	if sub.HasSubSubCategory(id) {
		logger.Warn("Cannot add sub-sub-category: duplicate id", logger.Fields{
			"category_id":         categoryID,
			"sub_category_id":     subCategoryID,
			"sub_sub_category_id": id,
		})
		return model.SubSubCategory{}, &model.DuplicateIDError{Scope: categoryID + "/" + subCategoryID, ID: id}
	}

	ssc := model.SubSubCategory{ID: id, Name: name}
	sub.SubSubCategories = append(sub.SubSubCategories, ssc)
	r.notify()

	logger.Info("Sub-sub-category added", logger.Fields{
		"category_id":         categoryID,
		"sub_category_id":     subCategoryID,
		"sub_sub_category_id": id,
	})
	return ssc, nil
}

// RemoveCategory drops the category with all of its descendants. Missing ids are a no-op.
func (r *taxonomyRepository) RemoveCategory(categoryID string) bool {
	ci := r.categoryIndex(categoryID)
	if ci < 0 {
		logger.Debug("Category already absent", logger.Fields{
			"category_id": categoryID,
		})
		return false
	}

	next := make(model.Taxonomy, 0, len(r.tree)-1)
	next = append(next, r.tree[:ci]...)
	r.tree = append(next, r.tree[ci+1:]...)
	r.notify()

	logger.Info("Category removed", logger.Fields{
		"category_id": categoryID,
	})
	return true
}

func (r *taxonomyRepository) RemoveSubCategory(categoryID, subCategoryID string) bool {
	ci := r.categoryIndex(categoryID)
	if ci < 0 {
		return false
	}
	si := r.subCategoryIndex(ci, subCategoryID)
	if si < 0 {
		logger.Debug("Sub-category already absent", logger.Fields{
			"category_id":     categoryID,
			"sub_category_id": subCategoryID,
		})
		return false
	}

	subs := r.tree[ci].SubCategories
	next := make([]model.SubCategory, 0, len(subs)-1)
	next = append(next, subs[:si]...)
	r.tree[ci].SubCategories = append(next, subs[si+1:]...)
	r.notify()

	logger.Info("Sub-category removed", logger.Fields{
		"category_id":     categoryID,
		"sub_category_id": subCategoryID,
	})
	return true
}

func (r *taxonomyRepository) RemoveSubSubCategory(categoryID, subCategoryID, subSubCategoryID string) bool {
	ci := r.categoryIndex(categoryID)
	if ci < 0 {
		return false
	}
	si := r.subCategoryIndex(ci, subCategoryID)
	if si < 0 {
		return false
	}

	sub := &r.tree[ci].SubCategories[si]
	next := make([]model.SubSubCategory, 0, len(sub.SubSubCategories))
	for _, ssc := range sub.SubSubCategories {
		if ssc.ID != subSubCategoryID {
			next = append(next, ssc)
		}
	}
	if len(next) == len(sub.SubSubCategories) {
		return false
	}
	sub.SubSubCategories = next
	r.notify()

	logger.Info("Sub-sub-category removed", logger.Fields{
		"category_id":         categoryID,
		"sub_category_id":     subCategoryID,
		"sub_sub_category_id": subSubCategoryID,
	})
	return true
}

func (r *taxonomyRepository) Subscribe(listener TaxonomyListener) {
	r.listeners = append(r.listeners, listener)
}

func (r *taxonomyRepository) notify() {
	for _, l := range r.listeners {
		l(r.tree.Clone())
	}
}
