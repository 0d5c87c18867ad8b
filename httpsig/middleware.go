package httpsig

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"github.com/golden-vcr/signing-common/entry"
	"github.com/golden-vcr/signing-common/sig"
)

// RequireSignature wraps an HTTP handler so that any request whose signature can't
// be verified is rejected with a 401 response before the handler runs. The request
// body is read in full in order to verify it, then restored so that the inner
// handler can read it again.
func RequireSignature(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
			logger := entry.Log(req)

			body := []byte{}
			if req.Body != nil {
				data, err := io.ReadAll(req.Body)
				if err != nil {
					http.Error(res, "failed to read request body", http.StatusBadRequest)
					return
				}
				body = data
				req.Body = io.NopCloser(bytes.NewReader(body))
			}

			if err := v.Verify(req, body); err != nil {
				var mismatch *sig.MismatchError
				if errors.As(err, &mismatch) {
					logger.Info("Rejecting request with invalid signature",
						"suppliedCode", mismatch.Supplied,
						"expectedCode", mismatch.Expected,
					)
				} else {
					logger.Info("Rejecting unsigned request", "error", err)
				}
				http.Error(res, "signature verification failed", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(res, req)
		})
	}
}
