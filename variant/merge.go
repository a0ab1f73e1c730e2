package variant

import (
	"github.com/voxelfmt/nbt/errs"
	"github.com/voxelfmt/nbt/internal/hash"
	"github.com/voxelfmt/nbt/snbt"
	"github.com/voxelfmt/nbt/tag"
)

// Merge merges other into v (§4.5): if both are Compound, a recursive
// key-wise merge where other's value overwrites on conflict, unless the
// conflict is again two Compounds, which recurses. If both are List and
// mergeList is true, elements of other not already present (by deep
// equality) are appended. Otherwise v is replaced outright by other.
//
// The Compound case delegates to tag.Compound.Merge, which already
// implements this recursion. Only the top-level List/List case is handled
// here, since tag has no exported list-dedup entry point on its own: it
// uses the hash-bucketed mergeListDedup below instead of an O(n^2) scan.
func (v *Value) Merge(other Value, mergeList bool) error {
	if v.t.Kind() == tag.KindCompound && other.t.Kind() == tag.KindCompound {
		dst, _ := v.t.Compound()
		src, _ := other.t.Compound()
		dst.Merge(src, mergeList)

		return nil
	}
	if mergeList && v.t.Kind() == tag.KindList && other.t.Kind() == tag.KindList {
		dst, _ := v.t.List()
		src, _ := other.t.List()
		mergeListDedup(dst, src)

		return nil
	}
	v.t = other.t.Clone()

	return nil
}

// mergeListDedup appends src's elements into dst that aren't already
// present by deep equality, using a content-hash bucket (cespare/xxhash/v2
// via internal/hash) to short-circuit the equality check: elements are
// compared with Equal only within the bucket of other elements sharing the
// same hash, instead of against every existing element (§4.5 merge).
func mergeListDedup(dst, src *tag.List) {
	buckets := make(map[uint64][]int, dst.Len())
	for i, e := range dst.Elements() {
		id := elementHash(e)
		buckets[id] = append(buckets[id], i)
	}

	dstElems := dst.Elements()
	for _, e := range src.Elements() {
		id := elementHash(e)
		found := false
		for _, idx := range buckets[id] {
			if dstElems[idx].Equal(e) {
				found = true

				break
			}
		}
		if found {
			continue
		}
		clone := e.Clone()
		if err := dst.Append(clone); err != nil {
			continue
		}
		newIdx := dst.Len() - 1
		buckets[id] = append(buckets[id], newIdx)
		dstElems = dst.Elements()
	}
}

// elementHash computes a content hash for dedup bucketing. The element's
// compact SNBT rendering is a convenient canonical string: two equal tags
// always render identically under the same flags, so hashing the rendering
// is equivalent to (and cheaper to compare than) hashing the tree directly.
func elementHash(t tag.Tag) uint64 {
	return hash.ID(snbt.Emit(t, 0, 0))
}

// MergeValues merges b into a and returns the result, leaving a and b
// untouched (a convenience wrapper around Merge for call sites that prefer
// an expression form).
func MergeValues(a, b Value, mergeList bool) (Value, error) {
	out := Value{t: a.t.Clone()}
	if err := out.Merge(Value{t: b.t}, mergeList); err != nil {
		return Value{}, errs.ErrDomain
	}

	return out, nil
}
