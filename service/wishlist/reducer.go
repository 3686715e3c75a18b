package wishlist

import "bookjam/model"

type State struct {
	Items []model.WishlistEntry `json:"items"`
}

type ActionKind int

const (
	ActAdd ActionKind = iota + 1
	ActRemove
	ActToggle
	ActClear
)

// Action carries the timestamp so Reduce stays a pure function.
type Action struct {
	Kind ActionKind
	Book *model.Book
	UID  string
	At   string
}

// Reduce returns the state after a. The input state is never modified.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case ActAdd:
		if a.Book == nil || contains(s.Items, a.Book.UID) {
			return s
		}
		return State{Items: append(clone(s.Items), snapshot(a.Book, a.At))}

	case ActRemove:
		return State{Items: without(s.Items, a.UID)}

	case ActToggle:
		if a.Book == nil {
			return s
		}
		if contains(s.Items, a.Book.UID) {
			return State{Items: without(s.Items, a.Book.UID)}
		}
		return State{Items: append(clone(s.Items), snapshot(a.Book, a.At))}

	case ActClear:
		return State{}
	}
	return s
}

func snapshot(b *model.Book, at string) model.WishlistEntry {
	return model.WishlistEntry{Book: b.Clone(), AddedAt: at}
}

func contains(items []model.WishlistEntry, uid string) bool {
	for _, e := range items {
		if e.UID == uid {
			return true
		}
	}
	return false
}

func without(items []model.WishlistEntry, uid string) []model.WishlistEntry {
	if !contains(items, uid) {
		return items
	}
	out := make([]model.WishlistEntry, 0, len(items)-1)
	for _, e := range items {
		if e.UID != uid {
			out = append(out, e)
		}
	}
	return out
}

func clone(items []model.WishlistEntry) []model.WishlistEntry {
	return append([]model.WishlistEntry(nil), items...)
}

// dedupe keeps the first entry per uid and drops entries without one.
func dedupe(items []model.WishlistEntry) []model.WishlistEntry {
	var out []model.WishlistEntry
	for _, e := range items {
		if e.UID == "" || contains(out, e.UID) {
			continue
		}
		out = append(out, e)
	}
	return out
}
