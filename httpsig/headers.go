package httpsig

import (
	"time"

	"github.com/golden-vcr/signing-common/canon"
)

const (
	// HeaderRequestId is the name of the header that carries a unique ID generated
	// for a signed request
	HeaderRequestId = "x-sig-request-id"

	// HeaderTimestamp is the name of the header that carries an RFC3339 timestamp
	// indicating when the request was made
	HeaderTimestamp = "x-sig-timestamp"

	// HeaderCode is the name of the header that carries the auth code computed over
	// the request ID, timestamp, and request payload body
	HeaderCode = "x-sig-code"
)

// requestParams builds the canonical parameter sequence covered by a request
// signature: the request ID, the request timestamp, and the payload body, in that
// order. Signer and verifier must agree on this sequence exactly.
func requestParams(requestId string, timestamp time.Time, body []byte) []canon.Param {
	return []canon.Param{
		canon.Text(requestId),
		canon.Instant(timestamp),
		canon.Text(string(body)),
	}
}
