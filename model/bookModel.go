// model/book.go
package model

import (
	"bytes"
	"encoding/json"
	"time"
)

type BookFormat string

const (
	FormatHardcover BookFormat = "hardcover"
	FormatPaperback BookFormat = "paperback"
	FormatEbook     BookFormat = "ebook"
	FormatAudiobook BookFormat = "audiobook"
)

// Image is a CMS asset reference.
type Image struct {
	UID         string `json:"uid"`
	URL         string `json:"url"`
	Filename    string `json:"filename"`
	Title       string `json:"title,omitempty"`
	ContentType string `json:"content_type"`
}

// Entry carries the envelope fields every CMS entry has.
type Entry struct {
	UID       string    `json:"uid"`
	URL       string    `json:"url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Locale    string    `json:"locale,omitempty"`
}

type SocialLinks struct {
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

type Author struct {
	Entry
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Bio         string       `json:"bio,omitempty"`
	Photo       *Image       `json:"photo,omitempty"`
	Website     string       `json:"website,omitempty"`
	SocialLinks *SocialLinks `json:"social_links,omitempty"`
}

type Category struct {
	Entry
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description,omitempty"`
	Icon         *Image `json:"icon,omitempty"`
	CoverImage   *Image `json:"cover_image,omitempty"`
	DisplayOrder int    `json:"display_order,omitempty"`
	IsFeatured   bool   `json:"is_featured,omitempty"`
	Color        string `json:"color,omitempty"`
}

type Banner struct {
	Entry
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle,omitempty"`
	Description     string `json:"description,omitempty"`
	BackgroundImage Image  `json:"background_image"`
	CTAText         string `json:"cta_text,omitempty"`
	CTALink         string `json:"cta_link,omitempty"`
	TextColor       string `json:"text_color,omitempty"` // light | dark
	DisplayOrder    int    `json:"display_order,omitempty"`
	IsActive        bool   `json:"is_active,omitempty"`
}

// Refs is a reference field the CMS returns either as one object or as a list.
// It always decodes to a list.
type Refs[T any] []T

func (r *Refs[T]) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = nil
		return nil
	}
	if b[0] == '[' {
		var many []T
		if err := json.Unmarshal(b, &many); err != nil {
			return err
		}
		*r = many
		return nil
	}
	var one T
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*r = Refs[T]{one}
	return nil
}

// First returns the first reference, or the zero value when empty.
func (r Refs[T]) First() (T, bool) {
	if len(r) == 0 {
		var zero T
		return zero, false
	}
	return r[0], true
}

type Book struct {
	Entry
	Title              string         `json:"title"`
	Slug               string         `json:"slug"`
	Authors            Refs[Author]   `json:"author"`
	Description        string         `json:"description"`
	ShortDescription   string         `json:"short_description,omitempty"`
	CoverImage         Image          `json:"cover_image"`
	Price              float64        `json:"price"`
	OriginalPrice      *float64       `json:"original_price,omitempty"`
	DiscountPercentage *float64       `json:"discount_percentage,omitempty"`
	ISBN               string         `json:"isbn"`
	Publisher          string         `json:"publisher,omitempty"`
	PublicationDate    string         `json:"publication_date,omitempty"`
	Pages              int            `json:"pages,omitempty"`
	Language           string         `json:"language,omitempty"`
	Format             BookFormat     `json:"format,omitempty"`
	Categories         Refs[Category] `json:"category"`
	Tags               []string       `json:"tags,omitempty"`
	Rating             float64        `json:"rating,omitempty"`
	ReviewCount        int            `json:"review_count,omitempty"`
	IsBestseller       bool           `json:"is_bestseller,omitempty"`
	IsNewArrival       bool           `json:"is_new_arrival,omitempty"`
	IsFeatured         bool           `json:"is_featured,omitempty"`
	StockQuantity      *int           `json:"stock_quantity,omitempty"`
	AgeGroup           string         `json:"age_group,omitempty"`
}

// Clone returns a deep copy, so later catalog changes don't leak into holders of the copy.
func (b Book) Clone() Book {
	out := b
	out.Authors = append(Refs[Author](nil), b.Authors...)
	out.Categories = append(Refs[Category](nil), b.Categories...)
	out.Tags = append([]string(nil), b.Tags...)
	if b.OriginalPrice != nil {
		v := *b.OriginalPrice
		out.OriginalPrice = &v
	}
	if b.DiscountPercentage != nil {
		v := *b.DiscountPercentage
		out.DiscountPercentage = &v
	}
	if b.StockQuantity != nil {
		v := *b.StockQuantity
		out.StockQuantity = &v
	}
	return out
}

// AuthorName is the display name of the primary author.
func (b Book) AuthorName() string {
	if a, ok := b.Authors.First(); ok {
		return a.Name
	}
	return ""
}

// InCategory reports whether any of the book's categories has the given slug.
func (b Book) InCategory(slug string) bool {
	for _, c := range b.Categories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}
