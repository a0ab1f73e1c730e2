// Package snbt implements the Stringified NBT lexer, recursive-descent
// parser, and flag-driven serializer (§4.4), plus the JSON projection built
// on top of the same serializer (§4.4.2's "JSON mode").
//
// Parse and Emit are the two halves of the round-trip: Parse reads text into
// a tag.Tag, Emit writes a tag.Tag back out under a combination of Flags.
// ToJSON is Emit with a fixed flag combination and JSON numeric formatting;
// it is lossy for the three numeric array kinds, which JSON has no way to
// distinguish from a plain array of numbers (§4.4.2, §9).
package snbt
