package catalogrepo

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"

	"bookjam/model"
	csrepo "bookjam/repository/contentstack"
)

// mockRepo serves the bundled sample catalog through the same interface as the CMS.
type mockRepo struct{}

func NewMock() csrepo.Repo { return mockRepo{} }

func (mockRepo) Books(_ context.Context, q csrepo.Query) ([]model.Book, error) {
	out, err := apply(mockBooks, q)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i] = out[i].Clone()
	}
	return out, nil
}

func (mockRepo) Book(_ context.Context, uid string, _ ...string) (*model.Book, error) {
	for _, b := range mockBooks {
		if b.UID == uid {
			c := b.Clone()
			return &c, nil
		}
	}
	return nil, fmt.Errorf("mock catalog: book %q not found", uid)
}

func (mockRepo) Categories(_ context.Context, q csrepo.Query) ([]model.Category, error) {
	return apply(mockCategories, q)
}

func (mockRepo) Banners(_ context.Context, q csrepo.Query) ([]model.Banner, error) {
	return apply(mockBanners, q)
}

func (mockRepo) Authors(_ context.Context, q csrepo.Query) ([]model.Author, error) {
	return apply(mockAuthors, q)
}

// apply mimics the delivery API's where/order/skip/limit handling on JSON field names.
func apply[T any](src []T, q csrepo.Query) ([]T, error) {
	type row struct {
		v T
		m map[string]any
	}
	rows := make([]row, 0, len(src))
	for _, v := range src {
		m, err := fields(v)
		if err != nil {
			return nil, err
		}
		if matches(m, q.Where) {
			rows = append(rows, row{v: v, m: m})
		}
	}

	if q.OrderBy != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			a, b := rows[i].m[q.OrderBy], rows[j].m[q.OrderBy]
			if q.Desc {
				a, b = b, a
			}
			return lessValue(a, b)
		})
	}

	if q.Skip > 0 {
		if q.Skip >= len(rows) {
			rows = rows[:0]
		} else {
			rows = rows[q.Skip:]
		}
	}
	if q.Limit > 0 && len(rows) > q.Limit {
		rows = rows[:q.Limit]
	}

	out := make([]T, len(rows))
	for i, r := range rows {
		out[i] = r.v
	}
	return out, nil
}

func fields(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func matches(m, where map[string]any) bool {
	for k, want := range where {
		got, ok := m[k]
		if !ok {
			// omitempty dropped a zero value
			if want == nil || reflect.ValueOf(want).IsZero() {
				continue
			}
			return false
		}
		if !equalJSON(got, want) {
			return false
		}
	}
	return true
}

func equalJSON(got, want any) bool {
	switch w := want.(type) {
	case int:
		f, ok := got.(float64)
		return ok && f == float64(w)
	case int64:
		f, ok := got.(float64)
		return ok && f == float64(w)
	}
	return reflect.DeepEqual(got, want)
}

func lessValue(a, b any) bool {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return !ok || av < bv
	case string:
		bv, ok := b.(string)
		return !ok || av < bv
	case nil:
		return false
	}
	return false
}
