// Package variant wraps a tag.Tag in a JSON-like façade: container indexing,
// type predicates, size/iteration, push/remove/rename, merge, and checked
// coercion casts (§4.5). It is a thin convenience layer over tag — every
// Value is backed by exactly one tag.Tag, and every façade operation either
// delegates straight to the matching tag/List/Compound method or implements
// the handful of operations (merge's dedup fast path, integer-literal
// auto-kind-selection) that have no equivalent there.
package variant
