package catalogsvc

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"bookjam/model"
	csrepo "bookjam/repository/contentstack"
)

const (
	listLimit    = 12
	kidsCategory = "kids-books"
)

var bookRefs = []string{"author", "category"}

type ErrCode string

const (
	ErrNotFound ErrCode = "NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Service interface {
	Books(ctx context.Context) ([]model.Book, error)
	Bestsellers(ctx context.Context) ([]model.Book, error)
	NewArrivals(ctx context.Context) ([]model.Book, error)
	Featured(ctx context.Context) ([]model.Book, error)
	KidsBooks(ctx context.Context) ([]model.Book, error)
	BooksByCategory(ctx context.Context, slug string) ([]model.Book, error)
	BookBySlug(ctx context.Context, slug string) (*model.Book, error)
	BookByUID(ctx context.Context, uid string) (*model.Book, error)
	Categories(ctx context.Context) ([]model.Category, error)
	CategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	Banners(ctx context.Context) ([]model.Banner, error)
	Authors(ctx context.Context) ([]model.Author, error)
	Search(ctx context.Context, q string) ([]model.Book, error)
}

type service struct {
	cms        csrepo.Repo
	configured bool
	mock       csrepo.Repo
	log        *slog.Logger
}

// New serves from cms when configured is true, and from mock whenever the CMS
// is off, failing, or empty.
func New(cms csrepo.Repo, configured bool, mock csrepo.Repo, log *slog.Logger) Service {
	if log == nil {
		log = slog.Default()
	}
	return &service{cms: cms, configured: configured && cms != nil, mock: mock, log: log}
}

// withFallback runs fetch against the CMS and falls back to the mock catalog.
func withFallback[T any](ctx context.Context, s *service, what string, fetch func(csrepo.Repo) ([]T, error)) ([]T, error) {
	if s.configured {
		out, err := fetch(s.cms)
		switch {
		case err != nil:
			s.log.Error("cms fetch failed, using mock data", "what", what, "err", err)
		case len(out) == 0:
			s.log.Info("cms returned no entries, using mock data", "what", what)
		default:
			return out, nil
		}
	}
	return fetch(s.mock)
}

func (s *service) books(ctx context.Context, what string, q csrepo.Query) ([]model.Book, error) {
	q.Include = bookRefs
	return withFallback(ctx, s, what, func(r csrepo.Repo) ([]model.Book, error) {
		return r.Books(ctx, q)
	})
}

func (s *service) Books(ctx context.Context) ([]model.Book, error) {
	return s.books(ctx, "books", csrepo.Query{})
}

func (s *service) Bestsellers(ctx context.Context) ([]model.Book, error) {
	return s.books(ctx, "bestsellers", csrepo.Query{Where: map[string]any{"is_bestseller": true}, Limit: listLimit})
}

func (s *service) NewArrivals(ctx context.Context) ([]model.Book, error) {
	return s.books(ctx, "new_arrivals", csrepo.Query{Where: map[string]any{"is_new_arrival": true}, Limit: listLimit})
}

func (s *service) Featured(ctx context.Context) ([]model.Book, error) {
	return s.books(ctx, "featured", csrepo.Query{Where: map[string]any{"is_featured": true}, Limit: listLimit})
}

func (s *service) KidsBooks(ctx context.Context) ([]model.Book, error) {
	return s.BooksByCategory(ctx, kidsCategory)
}

// BooksByCategory filters after the fetch; the delivery API can't match inside
// resolved references. A CMS with no books in the category falls back to the mock.
func (s *service) BooksByCategory(ctx context.Context, slug string) ([]model.Book, error) {
	all, err := s.Books(ctx)
	if err != nil {
		return nil, err
	}
	out := inCategory(all, slug)
	if len(out) > 0 || !s.configured {
		return out, nil
	}
	s.log.Info("no cms books in category, using mock data", "slug", slug)
	mock, err := s.mock.Books(ctx, csrepo.Query{Include: bookRefs})
	if err != nil {
		return nil, err
	}
	return inCategory(mock, slug), nil
}

func inCategory(books []model.Book, slug string) []model.Book {
	var out []model.Book
	for _, b := range books {
		if b.InCategory(slug) {
			out = append(out, b)
		}
	}
	return out
}

func (s *service) BookBySlug(ctx context.Context, slug string) (*model.Book, error) {
	all, err := s.Books(ctx)
	if err != nil {
		return nil, err
	}
	for i := range all {
		if all[i].Slug == slug {
			return &all[i], nil
		}
	}
	return nil, codedError{ErrNotFound}
}

func (s *service) BookByUID(ctx context.Context, uid string) (*model.Book, error) {
	if uid == "" {
		return nil, codedError{ErrNotFound}
	}
	if s.configured {
		b, err := s.cms.Book(ctx, uid, bookRefs...)
		if err == nil && b != nil && b.UID != "" {
			return b, nil
		}
		s.log.Warn("cms book lookup failed, using mock data", "uid", uid, "err", err)
	}
	b, err := s.mock.Book(ctx, uid)
	if err != nil {
		return nil, codedError{ErrNotFound}
	}
	return b, nil
}

func (s *service) Categories(ctx context.Context) ([]model.Category, error) {
	q := csrepo.Query{OrderBy: "display_order"}
	return withFallback(ctx, s, "categories", func(r csrepo.Repo) ([]model.Category, error) {
		return r.Categories(ctx, q)
	})
}

func (s *service) CategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	if slug == "" {
		return nil, codedError{ErrNotFound}
	}
	q := csrepo.Query{Where: map[string]any{"slug": slug}, Limit: 1}
	cats, err := withFallback(ctx, s, "category", func(r csrepo.Repo) ([]model.Category, error) {
		return r.Categories(ctx, q)
	})
	if err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, codedError{ErrNotFound}
	}
	return &cats[0], nil
}

func (s *service) Banners(ctx context.Context) ([]model.Banner, error) {
	q := csrepo.Query{Where: map[string]any{"is_active": true}, OrderBy: "display_order"}
	return withFallback(ctx, s, "banners", func(r csrepo.Repo) ([]model.Banner, error) {
		return r.Banners(ctx, q)
	})
}

func (s *service) Authors(ctx context.Context) ([]model.Author, error) {
	q := csrepo.Query{OrderBy: "name"}
	return withFallback(ctx, s, "authors", func(r csrepo.Repo) ([]model.Author, error) {
		return r.Authors(ctx, q)
	})
}

// Search matches title, primary author name or description, case-insensitively.
func (s *service) Search(ctx context.Context, q string) ([]model.Book, error) {
	needle := strings.ToLower(strings.TrimSpace(q))
	if needle == "" {
		return nil, nil
	}
	all, err := s.Books(ctx)
	if err != nil {
		return nil, err
	}
	var out []model.Book
	for _, b := range all {
		if strings.Contains(strings.ToLower(b.Title), needle) ||
			strings.Contains(strings.ToLower(b.AuthorName()), needle) ||
			strings.Contains(strings.ToLower(b.Description), needle) {
			out = append(out, b)
		}
	}
	return out, nil
}
