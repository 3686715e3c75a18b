package wishlist

type AddItemReq struct {
	BookUID string `json:"book_uid" validate:"required"`
}
