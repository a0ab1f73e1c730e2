package variant

import (
	"github.com/voxelfmt/nbt/snbt"
)

// Parse reads a single SNBT value from s, returning the wrapped Value and
// the number of bytes consumed.
func Parse(s string, opts ...snbt.ParseOption) (Value, int, error) {
	t, n, err := snbt.Parse(s, opts...)
	if err != nil {
		return Value{}, n, err
	}

	return Value{t: t}, n, nil
}

// ToSNBT renders v as SNBT text under flags, at indent spaces per level.
func (v Value) ToSNBT(flags snbt.Flags, indent int) string {
	return snbt.Emit(v.t, flags, indent)
}

// ToJSON renders v as a JSON projection (§4.4): AlwaysLineFeed|ForceQuote,
// no numeric type-marker suffixes, typed numeric arrays collapsed to plain
// JSON arrays. This projection is lossy: it cannot round-trip back through
// Parse.
func (v Value) ToJSON(indent int) string {
	return snbt.ToJSON(v.t, indent)
}

// String implements fmt.Stringer by rendering v in its default SNBT form.
func (v Value) String() string {
	return snbt.Emit(v.t, snbt.Default, 0)
}
