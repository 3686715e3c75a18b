package cart

type AddItemReq struct {
	BookUID string `json:"book_uid" validate:"required"`
}

// Quantity is a pointer so an explicit 0 (remove) passes "required".
type UpdateQuantityReq struct {
	Quantity *int `json:"quantity" validate:"required"`
}
