package model

type ActionKind string

const (
	ActionRemoveCategory       ActionKind = "remove_category"
	ActionRemoveSubCategory    ActionKind = "remove_sub_category"
	ActionRemoveSubSubCategory ActionKind = "remove_sub_sub_category"
	ActionRemoveProduct        ActionKind = "remove_product"
)

// PendingAction is a destructive admin action waiting for confirmation
type PendingAction struct {
	ID        string       `json:"id"`
	Kind      ActionKind   `json:"kind"`
	Title     string       `json:"title"`
	Message   string       `json:"message"`
	Path      CategoryPath `json:"path,omitempty"`
	ProductID string       `json:"productId,omitempty"`
}
