package snbt

import "encoding/base64"

// base64Marker is the comment SNBT appends after a quoted string literal
// whose content is the base64 encoding of a non-UTF-8 byte string (§4.4.2,
// §4.4.4). The parser recognizes it immediately following the closing quote
// of a double-quoted string.
const base64Marker = " /*BASE64*/"

// encodeBase64 and decodeBase64 are thin wrappers over the standard
// alphabet with padding (§4.4.4). Base64 is listed as an external
// collaborator in §1 ("a pure function used by the SNBT serializer"); no
// third-party base64 codec appears anywhere in the reference corpus, so the
// standard library's implementation of that exact contract is used as the
// collaborator, per DESIGN.md.
func encodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func decodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}
