package service

import (
	"github.com/citra/storefront/internal/app/model"
	"github.com/citra/storefront/pkg/logger"
)

type CartService interface {
	Add(product model.Product) model.CartLine
	SetQuantity(productID string, quantity int) error
	AdjustQuantity(productID string, delta int) (model.CartLine, error)
	Remove(productID string) bool
	Clear()
	Line(productID string) (model.CartLine, bool)
	Lines() []model.CartLine
	Total() int64
	Count() int
}

// cartService keeps one line per product in the order lines were first added.
type cartService struct {
	lines []model.CartLine
}

func NewCartService() CartService {
	return &cartService{}
}

func (s *cartService) find(productID string) int {
	for i, l := range s.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}

// Add puts one unit of product in the cart, snapshotting its display fields on first add
func (s *cartService) Add(product model.Product) model.CartLine {
	if i := s.find(product.ID); i >= 0 {
		s.lines[i].Quantity++
		logger.Debug("Cart line incremented", logger.Fields{
			"product_id": product.ID,
			"quantity":   s.lines[i].Quantity,
		})
		return s.lines[i]
	}

	line := model.CartLine{
		ProductID: product.ID,
		Snapshot:  model.SnapshotOf(product),
		Quantity:  1,
	}
	s.lines = append(s.lines, line)
	logger.Debug("Cart line created", logger.Fields{
		"product_id": product.ID,
		"price":      line.Snapshot.Price,
	})
	return line
}

// SetQuantity updates an existing line; quantity <= 0 removes it
func (s *cartService) SetQuantity(productID string, quantity int) error {
	if quantity <= 0 {
		s.Remove(productID)
		return nil
	}
	i := s.find(productID)
	if i < 0 {
		logger.Warn("Cannot set quantity: product not in cart", logger.Fields{
			"product_id": productID,
			"quantity":   quantity,
		})
		return &model.NotFoundError{Kind: "cart line", ID: productID}
	}
	s.lines[i].Quantity = quantity
	return nil
}

// AdjustQuantity changes a line by delta but never below 1
func (s *cartService) AdjustQuantity(productID string, delta int) (model.CartLine, error) {
	i := s.find(productID)
	if i < 0 {
		return model.CartLine{}, &model.NotFoundError{Kind: "cart line", ID: productID}
	}
	q := s.lines[i].Quantity + delta
	if q < 1 {
		q = 1
	}
	s.lines[i].Quantity = q
	return s.lines[i], nil
}

func (s *cartService) Remove(productID string) bool {
	i := s.find(productID)
	if i < 0 {
		return false
	}
	next := make([]model.CartLine, 0, len(s.lines)-1)
	next = append(next, s.lines[:i]...)
	s.lines = append(next, s.lines[i+1:]...)
	logger.Debug("Cart line removed", logger.Fields{
		"product_id": productID,
	})
	return true
}

func (s *cartService) Clear() {
	s.lines = nil
}

func (s *cartService) Line(productID string) (model.CartLine, bool) {
	if i := s.find(productID); i >= 0 {
		return s.lines[i], true
	}
	return model.CartLine{}, false
}

func (s *cartService) Lines() []model.CartLine {
	return append([]model.CartLine{}, s.lines...)
}

// Total uses snapshot prices so later catalog edits do not move it
func (s *cartService) Total() int64 {
	var total int64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

func (s *cartService) Count() int {
	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}
