package httpsig

import (
	"errors"
	"net/http"
	"time"

	"github.com/golden-vcr/signing-common/sig"
)

// ErrUnsigned indicates that a request carried no usable signature headers: one or
// more of the required headers was missing or malformed, so no auth code was ever
// recomputed or compared
var ErrUnsigned = errors.New("request is not signed")

type Verifier interface {
	Verify(req *http.Request, body []byte) error
}

func NewVerifier(secret string) Verifier {
	return &verifier{
		v: sig.NewVerifier(secret),
	}
}

type verifier struct {
	v sig.Verifier
}

// Verify recomputes the auth code for a signed request and compares it against the
// value of the code header: a missing or malformed header yields ErrUnsigned, and a
// code that doesn't match yields a *sig.MismatchError
func (v *verifier) Verify(req *http.Request, body []byte) error {
	requestId := req.Header.Get(HeaderRequestId)
	if requestId == "" {
		return ErrUnsigned
	}

	timestampValue := req.Header.Get(HeaderTimestamp)
	if timestampValue == "" {
		return ErrUnsigned
	}
	timestamp, err := time.Parse(time.RFC3339, timestampValue)
	if err != nil {
		return ErrUnsigned
	}

	code := req.Header.Get(HeaderCode)
	if code == "" {
		return ErrUnsigned
	}

	return v.v.Verify(code, requestParams(requestId, timestamp, body))
}

var _ Verifier = (*verifier)(nil)
