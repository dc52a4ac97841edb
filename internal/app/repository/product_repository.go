package repository

import (
	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/pkg/logger"
	"github.com/google/uuid"
)

// TaxonomyResolver answers whether a category path exists
type TaxonomyResolver interface {
	Exists(path model.CategoryPath) bool
}

type ProductRepository interface {
	Upsert(product model.Product) (model.Product, bool, error)
	Remove(id string) bool
	FindByID(id string) (model.Product, error)
	GetAll() []model.Product
	GetByCategory(path model.CategoryPath) []model.Product
	Count() int
}

// productRepository keeps products in insertion order; index maps id to slice position.
type productRepository struct {
	taxonomy TaxonomyResolver
	products []model.Product
	index    map[string]int
}

// NewProductRepository loads seed products in order through the same rules as Upsert.
// taxonomy may be nil, in which case references are not checked.
func NewProductRepository(taxonomy TaxonomyResolver, seed []model.Product) (ProductRepository, error) {
	r := &productRepository{
		taxonomy: taxonomy,
		index:    make(map[string]int),
	}
	for _, p := range seed {
		if _, _, err := r.Upsert(p); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Upsert inserts a new product or replaces an existing one wholesale.
// It reports whether the product was created. A product whose category
// changes is moved to the end of the listing.
func (r *productRepository) Upsert(product model.Product) (model.Product, bool, error) {
	p := product.Clone()
	p.Normalize()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}

	logger.Debug("Upserting product", logger.Fields{
		"product_id": p.ID,
		"category":   p.Path().String(),
	})

	if err := p.Validate(); err != nil {
		logger.Warn("Cannot upsert product: validation failed", logger.Fields{
			"product_id": p.ID,
			"error":      err.Error(),
		})
		return model.Product{}, false, err
	}
	if r.taxonomy != nil && !r.taxonomy.Exists(p.Path()) {
		logger.Warn("Cannot upsert product: unknown taxonomy path", logger.Fields{
			"product_id": p.ID,
			"path":       p.Path().String(),
		})
		return model.Product{}, false, model.NewValidationError("category", "does not reference an existing taxonomy node")
	}

	i, exists := r.index[p.ID]
	switch {
	case !exists:
		r.index[p.ID] = len(r.products)
		r.products = append(r.products, p)
		logger.Info("Product created", logger.Fields{
			"product_id": p.ID,
		})
	case r.products[i].Category != p.Category:
		r.removeAt(i)
		r.index[p.ID] = len(r.products)
		r.products = append(r.products, p)
		logger.Info("Product moved to new category", logger.Fields{
			"product_id": p.ID,
			"category":   p.Category,
		})
	default:
		r.products[i] = p
		logger.Info("Product updated", logger.Fields{
			"product_id": p.ID,
		})
	}

	return p.Clone(), !exists, nil
}

// Remove deletes a product; missing ids are a no-op
func (r *productRepository) Remove(id string) bool {
	i, ok := r.index[id]
	if !ok {
		logger.Debug("Product already absent", logger.Fields{
			"product_id": id,
		})
		return false
	}
	r.removeAt(i)
	logger.Info("Product removed", logger.Fields{
		"product_id": id,
	})
	return true
}

func (r *productRepository) removeAt(i int) {
	delete(r.index, r.products[i].ID)
	next := make([]model.Product, 0, len(r.products)-1)
	next = append(next, r.products[:i]...)
	r.products = append(next, r.products[i+1:]...)
	for j := i; j < len(r.products); j++ {
		r.index[r.products[j].ID] = j
	}
}

func (r *productRepository) FindByID(id string) (model.Product, error) {
	i, ok := r.index[id]
	if !ok {
		return model.Product{}, &model.NotFoundError{Kind: "product", ID: id}
	}
	return r.products[i].Clone(), nil
}

func (r *productRepository) GetAll() []model.Product {
	out := make([]model.Product, len(r.products))
	for i, p := range r.products {
		out[i] = p.Clone()
	}
	return out
}

func (r *productRepository) GetByCategory(path model.CategoryPath) []model.Product {
	out := make([]model.Product, 0)
	for _, p := range r.products {
		if p.InPath(path) {
			out = append(out, p.Clone())
		}
	}
	return out
}

func (r *productRepository) Count() int {
	return len(r.products)
}
