package contentstackrepo

import (
	"context"

	"bookjam/model"
)

// Content type UIDs configured in the stack.
const (
	TypeBook     = "book"
	TypeCategory = "category"
	TypeBanner   = "banner"
	TypeAuthor   = "author"
)

type Credentials struct {
	APIKey        string
	DeliveryToken string
	Environment   string
	Region        string // us | eu | azure-na | azure-eu | gcp-na
}

// Configured reports whether enough is set to talk to the delivery API.
func (c Credentials) Configured() bool {
	return c.APIKey != "" && c.DeliveryToken != "" && c.Environment != ""
}

type Query struct {
	Limit   int
	Skip    int
	Include []string       // reference fields to resolve
	Where   map[string]any // exact-match filters
	OrderBy string
	Desc    bool
}

type Repo interface {
	Books(ctx context.Context, q Query) ([]model.Book, error)
	Book(ctx context.Context, uid string, include ...string) (*model.Book, error)
	Categories(ctx context.Context, q Query) ([]model.Category, error)
	Banners(ctx context.Context, q Query) ([]model.Banner, error)
	Authors(ctx context.Context, q Query) ([]model.Author, error)
}
