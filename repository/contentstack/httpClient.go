package contentstackrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"bookjam/model"
	"bookjam/util/httpx"
)

var regionHosts = map[string]string{
	"us":       "https://cdn.contentstack.io",
	"eu":       "https://eu-cdn.contentstack.com",
	"azure-na": "https://azure-na-cdn.contentstack.com",
	"azure-eu": "https://azure-eu-cdn.contentstack.com",
	"gcp-na":   "https://gcp-na-cdn.contentstack.com",
}

// HostFor maps a region name to its delivery host; unknown regions use us.
func HostFor(region string) string {
	if h, ok := regionHosts[strings.ToLower(strings.TrimSpace(region))]; ok {
		return h
	}
	return regionHosts["us"]
}

type httpRepo struct {
	creds  Credentials
	host   string
	client *http.Client
}

// NewHTTP talks to the delivery API. An empty host is derived from creds.Region.
func NewHTTP(creds Credentials, host string, client *http.Client) Repo {
	if host == "" {
		host = HostFor(creds.Region)
	}
	if client == nil {
		client = httpx.Client()
	}
	return &httpRepo{creds: creds, host: strings.TrimRight(host, "/"), client: client}
}

func (r *httpRepo) Books(ctx context.Context, q Query) ([]model.Book, error) {
	return entries[model.Book](ctx, r, TypeBook, q)
}

func (r *httpRepo) Categories(ctx context.Context, q Query) ([]model.Category, error) {
	return entries[model.Category](ctx, r, TypeCategory, q)
}

func (r *httpRepo) Banners(ctx context.Context, q Query) ([]model.Banner, error) {
	return entries[model.Banner](ctx, r, TypeBanner, q)
}

func (r *httpRepo) Authors(ctx context.Context, q Query) ([]model.Author, error) {
	return entries[model.Author](ctx, r, TypeAuthor, q)
}

func (r *httpRepo) Book(ctx context.Context, uid string, include ...string) (*model.Book, error) {
	if uid == "" {
		return nil, errors.New("contentstack: empty entry uid")
	}
	v := url.Values{}
	v.Set("environment", r.creds.Environment)
	for _, ref := range include {
		v.Add("include[]", ref)
	}
	u := fmt.Sprintf("%s/v3/content_types/%s/entries/%s?%s", r.host, TypeBook, url.PathEscape(uid), v.Encode())

	var out struct {
		Entry model.Book `json:"entry"`
	}
	if err := httpx.GetJSON(ctx, r.client, u, r.headers(), &out); err != nil {
		return nil, fmt.Errorf("contentstack fetch %s/%s: %w", TypeBook, uid, err)
	}
	return &out.Entry, nil
}

func entries[T any](ctx context.Context, r *httpRepo, contentType string, q Query) ([]T, error) {
	u, err := r.entriesURL(contentType, q)
	if err != nil {
		return nil, err
	}
	var out struct {
		Entries []T `json:"entries"`
	}
	if err := httpx.GetJSON(ctx, r.client, u, r.headers(), &out); err != nil {
		return nil, fmt.Errorf("contentstack list %s: %w", contentType, err)
	}
	return out.Entries, nil
}

func (r *httpRepo) entriesURL(contentType string, q Query) (string, error) {
	v := url.Values{}
	v.Set("environment", r.creds.Environment)
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Skip > 0 {
		v.Set("skip", strconv.Itoa(q.Skip))
	}
	for _, ref := range q.Include {
		v.Add("include[]", ref)
	}
	if len(q.Where) > 0 {
		b, err := json.Marshal(q.Where)
		if err != nil {
			return "", fmt.Errorf("contentstack query: %w", err)
		}
		v.Set("query", string(b))
	}
	if q.OrderBy != "" {
		if q.Desc {
			v.Set("desc", q.OrderBy)
		} else {
			v.Set("asc", q.OrderBy)
		}
	}
	return fmt.Sprintf("%s/v3/content_types/%s/entries?%s", r.host, contentType, v.Encode()), nil
}

func (r *httpRepo) headers() http.Header {
	h := http.Header{}
	h.Set("api_key", r.creds.APIKey)
	h.Set("access_token", r.creds.DeliveryToken)
	return h
}
