package tag

import "github.com/voxelfmt/nbt/errs"

// List is a homogeneous ordered sequence of tags (§3.1, §3.2).
//
// A newly created empty List has element-type End; appending the first
// element sets it. This module's chosen behavior for the open question in
// §9 ("insert element of the wrong type") is to REJECT the append with
// errs.ErrListElementType. The SNBT parser builds Lists through Append; the
// binary decoder builds them with NewListOf, decoding every element under
// the single element type recorded on the wire.
type List struct {
	elemKind Kind
	elems    []Tag
}

// NewEmptyList creates an empty List with element-type End.
func NewEmptyList() *List {
	return &List{elemKind: KindEnd}
}

// NewListOf creates a List from an existing, already-homogeneous slice of
// tags. It is the caller's responsibility to ensure homogeneity; the binary
// decoder uses it after decoding every element under elemKind.
func NewListOf(elemKind Kind, elems []Tag) *List {
	return &List{elemKind: elemKind, elems: elems}
}

// ElemKind returns the List's recorded element type.
func (l *List) ElemKind() Kind { return l.elemKind }

// Len returns the number of elements.
func (l *List) Len() int { return len(l.elems) }

// Get returns the element at index i.
func (l *List) Get(i int) (Tag, error) {
	if i < 0 || i >= len(l.elems) {
		return Tag{}, errs.ErrShortBuffer
	}
	return l.elems[i], nil
}

// Elements returns the backing slice. The caller must not retain it across a
// subsequent mutating call (Append/Set/RemoveAt), which may reallocate.
func (l *List) Elements() []Tag { return l.elems }

// Append adds t to the end of the list.
//
// If the list is empty and its element-type is End, t's kind becomes the
// list's element-type. Otherwise
// t.Kind() must equal the list's element-type, or Append returns
// errs.ErrListElementType and leaves the list unmodified.
func (l *List) Append(t Tag) error {
	if len(l.elems) == 0 && l.elemKind == KindEnd {
		l.elemKind = t.Kind()
	} else if t.Kind() != l.elemKind {
		return errs.ErrListElementType
	}
	l.elems = append(l.elems, t)

	return nil
}

// Set replaces the element at index i. t.Kind() must match the list's
// element-type.
func (l *List) Set(i int, t Tag) error {
	if i < 0 || i >= len(l.elems) {
		return errs.ErrShortBuffer
	}
	if t.Kind() != l.elemKind {
		return errs.ErrListElementType
	}
	l.elems[i] = t

	return nil
}

// RemoveAt removes the element at index i. Indices at or after i shift down
// by one, matching a typical dynamic array (§3.3).
func (l *List) RemoveAt(i int) error {
	if i < 0 || i >= len(l.elems) {
		return errs.ErrShortBuffer
	}
	l.elems = append(l.elems[:i], l.elems[i+1:]...)
	if len(l.elems) == 0 {
		l.elemKind = KindEnd
	}

	return nil
}

// Clone performs a deep copy of the list and every element it contains.
func (l *List) Clone() *List {
	out := &List{elemKind: l.elemKind, elems: make([]Tag, len(l.elems))}
	for i, e := range l.elems {
		out.elems[i] = e.Clone()
	}

	return out
}

// Equal reports whether l and other contain the same element-type and the
// same elements in the same order.
func (l *List) Equal(other *List) bool {
	if other == nil {
		return false
	}
	if l.elemKind != other.elemKind || len(l.elems) != len(other.elems) {
		return false
	}
	for i := range l.elems {
		if !l.elems[i].Equal(other.elems[i]) {
			return false
		}
	}

	return true
}
