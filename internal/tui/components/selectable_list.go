package components

import "logbook/internal/errors"

// SelectableList is an ordered list with at most one selected index.
// Movement wraps around at both ends.
type SelectableList[T any] struct {
	items    []T
	selected int
	hasSel   bool
}

func NewSelectableList[T any](items ...T) *SelectableList[T] {
	l := &SelectableList[T]{}
	for _, item := range items {
		l.AddItem(item)
	}
	return l
}

// AddItem appends item to the end of the list.
func (l *SelectableList[T]) AddItem(item T) {
	l.items = append(l.items, item)
}

// Reset replaces the items. A selection past the new end moves to the last
// item and an empty list has no selection.
func (l *SelectableList[T]) Reset(items ...T) {
	l.items = append(l.items[:0:0], items...)
	switch {
	case len(l.items) == 0:
		l.selected, l.hasSel = 0, false
	case l.selected >= len(l.items):
		l.selected = len(l.items) - 1
	}
}

// Next moves the selection down, wrapping from the last item to the first.
// With nothing selected yet it selects the first item.
func (l *SelectableList[T]) Next() error {
	if len(l.items) == 0 {
		return errors.NewListError("cannot select next item", 0)
	}

	i := 0
	if l.hasSel && l.selected < len(l.items)-1 {
		i = l.selected + 1
	}
	l.selected, l.hasSel = i, true
	return nil
}

// Previous moves the selection up, wrapping from the first item to the last.
// With nothing selected yet it selects the first item.
func (l *SelectableList[T]) Previous() error {
	if len(l.items) == 0 {
		return errors.NewListError("cannot select previous item", 0)
	}

	i := 0
	if l.hasSel {
		if l.selected == 0 {
			i = len(l.items) - 1
		} else {
			i = l.selected - 1
		}
	}
	l.selected, l.hasSel = i, true
	return nil
}

// Selected returns the selected index, if any.
func (l *SelectableList[T]) Selected() (int, bool) {
	return l.selected, l.hasSel
}

// SelectedItem returns the item under the selection, if any.
func (l *SelectableList[T]) SelectedItem() (T, bool) {
	var zero T
	if !l.hasSel || l.selected >= len(l.items) {
		return zero, false
	}
	return l.items[l.selected], true
}

// Items returns a copy of the items in display order.
func (l *SelectableList[T]) Items() []T {
	items := make([]T, len(l.items))
	copy(items, l.items)
	return items
}

func (l *SelectableList[T]) Len() int {
	return len(l.items)
}
