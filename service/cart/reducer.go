package cart

import "bookjam/model"

// State is the whole cart. Open is UI-only and is never persisted.
type State struct {
	Items []model.CartLine `json:"items"`
	Open  bool             `json:"-"`
}

type ActionKind int

const (
	ActAdd ActionKind = iota + 1
	ActRemove
	ActSetQuantity
	ActClear
	ActOpen
	ActClose
	ActToggle
)

type Action struct {
	Kind     ActionKind
	Book     *model.Book
	UID      string
	Quantity int
}

func Add(b *model.Book) Action             { return Action{Kind: ActAdd, Book: b} }
func Remove(uid string) Action             { return Action{Kind: ActRemove, UID: uid} }
func SetQuantity(uid string, q int) Action { return Action{Kind: ActSetQuantity, UID: uid, Quantity: q} }
func Clear() Action                        { return Action{Kind: ActClear} }

// touchesItems reports whether the action can change the persisted part of State.
func (a Action) touchesItems() bool {
	switch a.Kind {
	case ActAdd, ActRemove, ActSetQuantity, ActClear:
		return true
	}
	return false
}

// Reduce returns the state after a. The input state is never modified.
func Reduce(s State, a Action) State {
	switch a.Kind {
	case ActAdd:
		if a.Book == nil {
			return s
		}
		items := cloneLines(s.Items)
		if i := indexOf(items, a.Book.UID); i >= 0 {
			items[i].Quantity++
		} else {
			items = append(items, model.CartLine{Book: a.Book, Quantity: 1})
		}
		return State{Items: items, Open: s.Open}

	case ActRemove:
		return State{Items: without(s.Items, a.UID), Open: s.Open}

	case ActSetQuantity:
		if a.Quantity <= 0 {
			return State{Items: without(s.Items, a.UID), Open: s.Open}
		}
		i := indexOf(s.Items, a.UID)
		if i < 0 {
			return s
		}
		items := cloneLines(s.Items)
		items[i].Quantity = a.Quantity
		return State{Items: items, Open: s.Open}

	case ActClear:
		return State{Items: nil, Open: s.Open}
	case ActOpen:
		return State{Items: s.Items, Open: true}
	case ActClose:
		return State{Items: s.Items, Open: false}
	case ActToggle:
		return State{Items: s.Items, Open: !s.Open}
	}
	return s
}

// normalize enforces the line invariants on state read back from storage:
// no nil books, quantity >= 1, one line per uid.
func normalize(items []model.CartLine) []model.CartLine {
	var out []model.CartLine
	for _, l := range items {
		if l.Book == nil || l.Book.UID == "" || l.Quantity < 1 {
			continue
		}
		if i := indexOf(out, l.Book.UID); i >= 0 {
			out[i].Quantity += l.Quantity
			continue
		}
		out = append(out, l)
	}
	return out
}

func indexOf(items []model.CartLine, uid string) int {
	for i, l := range items {
		if l.Book != nil && l.Book.UID == uid {
			return i
		}
	}
	return -1
}

func without(items []model.CartLine, uid string) []model.CartLine {
	if indexOf(items, uid) < 0 {
		return items
	}
	out := make([]model.CartLine, 0, len(items)-1)
	for _, l := range items {
		if l.Book != nil && l.Book.UID == uid {
			continue
		}
		out = append(out, l)
	}
	return out
}

func cloneLines(items []model.CartLine) []model.CartLine {
	return append([]model.CartLine(nil), items...)
}
