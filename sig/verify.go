package sig

import (
	"crypto/hmac"
	"fmt"

	"github.com/golden-vcr/signing-common/canon"
)

// MismatchError indicates that a supplied auth code did not match the one
// recomputed from the shared secret and the parameter sequence. It carries both
// codes and the original parameters so that the caller can log diagnostics; it never
// carries the secret itself.
type MismatchError struct {
	Supplied string
	Expected string
	Params   []canon.Param
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("auth code mismatch: supplied %q, expected %q", e.Supplied, e.Expected)
}

// Verify recomputes the auth code for the given key and parameters and compares the
// supplied code against it, returning a *MismatchError on inequality. The two base64
// strings are compared as exact byte sequences, in constant time: no trimming and no
// case folding, so any difference (including whitespace) is a mismatch.
func Verify(suppliedCode, key string, params []canon.Param) error {
	expected, err := Sign(key, params)
	if err != nil {
		return err
	}

	if !hmac.Equal([]byte(suppliedCode), []byte(expected)) {
		return &MismatchError{
			Supplied: suppliedCode,
			Expected: expected,
			Params:   params,
		}
	}
	return nil
}

// Verifier checks supplied auth codes against a secret that's fixed at construction
// time
type Verifier interface {
	Verify(suppliedCode string, params []canon.Param) error
}

func NewVerifier(secret string) Verifier {
	return &verifier{
		secret: secret,
	}
}

type verifier struct {
	secret string
}

func (v *verifier) Verify(suppliedCode string, params []canon.Param) error {
	return Verify(suppliedCode, v.secret, params)
}

var _ Verifier = (*verifier)(nil)
