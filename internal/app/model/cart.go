package model

// ProductSnapshot freezes the display fields of a product when it enters the cart
type ProductSnapshot struct {
	Name     string `json:"name"`
	Brand    string `json:"brand"`
	Price    int64  `json:"price"`
	ImageURL string `json:"imageUrl"`
}

func SnapshotOf(p Product) ProductSnapshot {
	return ProductSnapshot{
		Name:     p.Name,
		Brand:    p.Brand,
		Price:    p.Price,
		ImageURL: p.ImageURL,
	}
}

type CartLine struct {
	ProductID string          `json:"productId"`
	Snapshot  ProductSnapshot `json:"snapshot"`
	Quantity  int             `json:"quantity"`
}

func (l CartLine) Subtotal() int64 {
	return l.Snapshot.Price * int64(l.Quantity)
}
