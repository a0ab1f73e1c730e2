package tag

import "sort"

// Compound is an ordered mapping from string keys to tags (§3.1).
//
// Internally keys are held in a plain Go map: iteration order is defined to
// be sorted by key (§3.2), not insertion order, so a hash map needs no
// auxiliary ordering structure — sorting happens once, at iteration time.
type Compound struct {
	m map[string]Tag
}

// NewCompoundEmpty creates an empty Compound.
func NewCompoundEmpty() *Compound {
	return &Compound{m: make(map[string]Tag)}
}

// Len returns the number of entries.
func (c *Compound) Len() int { return len(c.m) }

// Get looks up key, returning the tag and whether it was present.
func (c *Compound) Get(key string) (Tag, bool) {
	v, ok := c.m[key]
	return v, ok
}

// Set inserts or overwrites the value at key.
func (c *Compound) Set(key string, v Tag) {
	if c.m == nil {
		c.m = make(map[string]Tag)
	}
	c.m[key] = v
}

// Delete removes key if present; a no-op otherwise.
func (c *Compound) Delete(key string) {
	delete(c.m, key)
}

// Has reports whether key is present.
func (c *Compound) Has(key string) bool {
	_, ok := c.m[key]
	return ok
}

// Keys returns all keys in sorted (lexicographic byte) order (§3.2).
func (c *Compound) Keys() []string {
	keys := make([]string, 0, len(c.m))
	for k := range c.m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// Range calls fn for every entry in sorted key order, stopping early if fn
// returns false.
func (c *Compound) Range(fn func(key string, v Tag) bool) {
	for _, k := range c.Keys() {
		if !fn(k, c.m[k]) {
			return
		}
	}
}

// Rename moves the value stored at oldKey to newKey. It reports false if
// oldKey was absent or newKey was already occupied by a different entry.
func (c *Compound) Rename(oldKey, newKey string) bool {
	if oldKey == newKey {
		return c.Has(oldKey)
	}
	v, ok := c.m[oldKey]
	if !ok {
		return false
	}
	if _, exists := c.m[newKey]; exists {
		return false
	}
	delete(c.m, oldKey)
	c.m[newKey] = v

	return true
}

// Clone performs a deep copy of the compound and every value it contains.
func (c *Compound) Clone() *Compound {
	out := &Compound{m: make(map[string]Tag, len(c.m))}
	for k, v := range c.m {
		out.m[k] = v.Clone()
	}

	return out
}

// Equal reports whether c and other have the same size and, for every key
// in one, an equal value exists under the same key in the other (§3.2).
func (c *Compound) Equal(other *Compound) bool {
	if other == nil || len(c.m) != len(other.m) {
		return false
	}
	for k, v := range c.m {
		ov, ok := other.m[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}

	return true
}

// Merge recursively merges other into c (§4.5): for conflicting keys where
// both values are Compounds, the merge recurses; when mergeList is set and
// both values are Lists, other's elements not already present are appended;
// otherwise other's value overwrites c's.
func (c *Compound) Merge(other *Compound, mergeList bool) {
	other.Range(func(key string, ov Tag) bool {
		if cur, ok := c.Get(key); ok && cur.Kind() == KindCompound && ov.Kind() == KindCompound {
			curC, _ := cur.Compound()
			ovC, _ := ov.Compound()
			curC.Merge(ovC, mergeList)

			return true
		}
		if mergeList {
			if cur, ok := c.Get(key); ok && cur.Kind() == KindList && ov.Kind() == KindList {
				curL, _ := cur.List()
				ovL, _ := ov.List()
				mergeListAppendUnique(curL, ovL)

				return true
			}
		}
		c.Set(key, ov.Clone())

		return true
	})
}

// mergeListAppendUnique appends elements of src into dst that are not
// already present in dst by deep equality (§4.5).
func mergeListAppendUnique(dst, src *List) {
	for _, e := range src.Elements() {
		found := false
		for _, d := range dst.Elements() {
			if d.Equal(e) {
				found = true
				break
			}
		}
		if !found {
			_ = dst.Append(e.Clone())
		}
	}
}
