// model/wishlist.go
package model

// WishlistEntry is a snapshot of a book taken when it was saved.
type WishlistEntry struct {
	Book
	AddedAt string `json:"addedAt"`
}
