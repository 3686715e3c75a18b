package wishlist_test

import (
	"context"
	"testing"
	"time"

	"bookjam/model"
	kvrepo "bookjam/repository/kv"
	"bookjam/service/persist"
	"bookjam/service/wishlist"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func book(uid string) *model.Book {
	return &model.Book{Entry: model.Entry{UID: uid}, Title: "Title " + uid, Price: 299}
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time {
	c.t = c.t.Add(time.Minute)
	return c.t
}

func newStore(kv kvrepo.Repo, opts ...wishlist.Option) *wishlist.Store {
	return wishlist.New(context.Background(), persist.New(kv, persist.WishlistKey, nil), opts...)
}

func TestAddThenRemove(t *testing.T) {
	ctx := context.Background()
	s := newStore(nil)

	b := book("book-b")
	s.AddItem(ctx, b)
	s.RemoveItem(ctx, b.UID)

	require.Equal(t, 0, s.ItemCount())
	require.False(t, s.IsInWishlist(b.UID))
}

func TestAddItem_Idempotent(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newStore(nil, wishlist.WithClock(c.now))

	s.AddItem(ctx, book("a"))
	first, ok := s.Entry("a")
	require.True(t, ok)

	s.AddItem(ctx, book("a"))
	require.Equal(t, 1, s.ItemCount())
	again, _ := s.Entry("a")
	require.Equal(t, first.AddedAt, again.AddedAt, "re-adding keeps the original timestamp")
}

func TestReAddAfterRemove_RefreshesTimestamp(t *testing.T) {
	ctx := context.Background()
	c := &clock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	s := newStore(nil, wishlist.WithClock(c.now))

	s.AddItem(ctx, book("a"))
	first, _ := s.Entry("a")
	s.RemoveItem(ctx, "a")
	s.AddItem(ctx, book("a"))
	second, _ := s.Entry("a")

	require.NotEqual(t, first.AddedAt, second.AddedAt)
	require.Equal(t, "2026-01-01T00:01:00Z", first.AddedAt)
	require.Equal(t, "2026-01-01T00:03:00Z", second.AddedAt)
}

func TestEntryIsSnapshot(t *testing.T) {
	ctx := context.Background()
	s := newStore(nil)
	b := book("a")
	b.Tags = []string{"fantasy"}
	s.AddItem(ctx, b)

	b.Price = 1
	b.Tags[0] = "changed"

	e, _ := s.Entry("a")
	require.Equal(t, 299.0, e.Price)
	require.Equal(t, []string{"fantasy"}, e.Tags)
}

func TestToggleItem(t *testing.T) {
	ctx := context.Background()
	s := newStore(nil)

	require.True(t, s.ToggleItem(ctx, book("a")))
	require.True(t, s.IsInWishlist("a"))
	require.False(t, s.ToggleItem(ctx, book("a")))
	require.False(t, s.IsInWishlist("a"))
	require.False(t, s.ToggleItem(ctx, nil))
}

func TestToggleIsItsOwnInverse(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("two toggles leave membership unchanged", prop.ForAll(
		func(seed []int, target int) bool {
			ctx := context.Background()
			s := newStore(nil)
			for _, n := range seed {
				s.AddItem(ctx, book(string(rune('a'+n))))
			}
			uid := string(rune('a' + target))
			before := s.IsInWishlist(uid)
			s.ToggleItem(ctx, book(uid))
			s.ToggleItem(ctx, book(uid))
			return s.IsInWishlist(uid) == before
		},
		gen.SliceOf(gen.IntRange(0, 5)),
		gen.IntRange(0, 5),
	))

	properties.TestingRun(t)
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	s := newStore(nil)
	s.AddItem(ctx, book("a"))
	s.AddItem(ctx, book("b"))
	s.Clear(ctx)
	require.Equal(t, 0, s.ItemCount())
	require.Empty(t, s.Items())
}

func TestPersistence_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvrepo.NewMemory()
	s := newStore(kv)
	s.AddItem(ctx, book("a"))
	s.AddItem(ctx, book("b"))
	s.RemoveItem(ctx, "a")

	again := newStore(kv)
	require.Equal(t, 1, again.ItemCount())
	require.True(t, again.IsInWishlist("b"))
	e, _ := again.Entry("b")
	orig, _ := s.Entry("b")
	require.Equal(t, orig.AddedAt, e.AddedAt)
	require.Equal(t, orig.Title, e.Title)
}

func TestPersistence_StoredFieldName(t *testing.T) {
	ctx := context.Background()
	kv := kvrepo.NewMemory()
	s := newStore(kv, wishlist.WithClock(func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 0, time.UTC) }))
	s.AddItem(ctx, book("a"))

	raw, err := kv.Get(ctx, persist.WishlistKey)
	require.NoError(t, err)
	require.Contains(t, raw, `"addedAt":"2026-02-03T04:05:06Z"`)
}

func TestPersistence_CorruptAndDuplicateData(t *testing.T) {
	ctx := context.Background()

	kv := kvrepo.NewMemory()
	require.NoError(t, kv.Set(ctx, persist.WishlistKey, "[]]"))
	require.Equal(t, 0, newStore(kv).ItemCount())

	require.NoError(t, kv.Set(ctx, persist.WishlistKey,
		`{"items":[{"uid":"a","title":"A","addedAt":"x"},{"uid":"a","title":"A2","addedAt":"y"},{"title":"no uid"}]}`))
	s := newStore(kv)
	require.Equal(t, 1, s.ItemCount())
	e, _ := s.Entry("a")
	require.Equal(t, "A", e.Title)
}
