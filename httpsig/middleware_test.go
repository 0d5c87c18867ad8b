package httpsig

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RequireSignature(t *testing.T) {
	// Inner handler echoes the request body so we can check that it's still readable
	// after the middleware has consumed it for verification
	inner := http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		assert.NoError(t, err)
		res.Write(body)
	})
	h := RequireSignature(NewVerifier("my-secret"))(inner)

	t.Run("unsigned requests are rejected with 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/somewhere", bytes.NewReader([]byte("hello")))
		res := httptest.NewRecorder()
		h.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("requests signed with the wrong secret are rejected with 401", func(t *testing.T) {
		body := []byte("hello")
		req := httptest.NewRequest(http.MethodPost, "/somewhere", bytes.NewReader(body))
		_, err := NewSigner("somebody-else's-secret").Sign(req, body)
		assert.NoError(t, err)
		res := httptest.NewRecorder()
		h.ServeHTTP(res, req)
		assert.Equal(t, http.StatusUnauthorized, res.Code)
	})

	t.Run("correctly-signed requests reach the inner handler", func(t *testing.T) {
		body := []byte("hello")
		req := httptest.NewRequest(http.MethodPost, "/somewhere", bytes.NewReader(body))
		_, err := NewSigner("my-secret").Sign(req, body)
		assert.NoError(t, err)
		res := httptest.NewRecorder()
		h.ServeHTTP(res, req)
		assert.Equal(t, http.StatusOK, res.Code)
		assert.Equal(t, body, res.Body.Bytes())
	})
}
