package canon

import (
	"errors"
	"strings"
)

// ErrNilParams indicates that Canonicalize was called with no parameter sequence at
// all: an empty sequence is valid input, but a nil one is a bug at the call site
var ErrNilParams = errors.New("parameter sequence is nil")

// Canonicalize converts an ordered parameter sequence into its single deterministic
// string form: each element is formatted by its variant's rule, and the results are
// joined in original order with "\n". A StringMap element is itself a "\n"-joined
// run of key=value lines, so it nests inside the outer join with no escaping between
// levels; the two levels are deliberately indistinguishable so that counterpart
// implementations agree byte-for-byte.
//
// A nil element formats as the empty string rather than failing. Note that this
// means a malformed or extra parameter canonicalizes identically to an absent-valued
// one; existing counterpart signers rely on this behavior, so it is preserved here
// as-is.
func Canonicalize(params []Param) (string, error) {
	if params == nil {
		return "", ErrNilParams
	}

	segments := make([]string, len(params))
	for i, p := range params {
		if p == nil {
			continue
		}
		segments[i] = p.canonical()
	}
	return strings.Join(segments, "\n"), nil
}
