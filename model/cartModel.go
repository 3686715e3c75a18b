// model/cart.go
package model

type CartLine struct {
	Book     *Book `json:"book"`
	Quantity int   `json:"quantity"`
}
