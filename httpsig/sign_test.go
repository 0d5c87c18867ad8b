package httpsig

import (
	"bytes"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_Sign(t *testing.T) {
	s := NewSigner("my-secret")

	t.Run("headers are populated as expected", func(t *testing.T) {
		// Verify that we can successfully sign a simple request
		body := []byte("hello world")
		req, err := http.NewRequest(http.MethodPost, "/somewhere", bytes.NewReader(body))
		assert.NoError(t, err)
		req, err = s.Sign(req, body)
		assert.NoError(t, err)

		// Verify that all expected headers are set on the resulting request
		assert.NotEmpty(t, req.Header.Get(HeaderRequestId))
		assert.NotEmpty(t, req.Header.Get(HeaderTimestamp))
		assert.NotEmpty(t, req.Header.Get(HeaderCode))

		// Verify that header values match expected types/formats
		_, err = uuid.Parse(req.Header.Get(HeaderRequestId))
		assert.NoError(t, err)
		_, err = time.Parse(time.RFC3339, req.Header.Get(HeaderTimestamp))
		assert.NoError(t, err)

		// Verify that the new request's body is still opened for read
		bodyCopy, err := io.ReadAll(req.Body)
		assert.NoError(t, err)
		assert.Equal(t, body, bodyCopy)
	})

	t.Run("auth code is computed as expected", func(t *testing.T) {
		// Sign another request, this time with pre-filled ID and timestamp so the
		// auth code is deterministic
		body := []byte("hello world")
		req, err := http.NewRequest(http.MethodPost, "/somewhere", bytes.NewReader(body))
		assert.NoError(t, err)
		req.Header.Set(HeaderRequestId, "d6c6a6d0-bb4e-4ff2-8188-4dda238f9223")
		req.Header.Set(HeaderTimestamp, "2023-12-06T21:06:04+00:00")
		req, err = s.Sign(req, body)
		assert.NoError(t, err)
		assert.Equal(t, "/KK3pbvPYT3qvwesSAH7oB0e5NE=", req.Header.Get(HeaderCode))
	})

	t.Run("an unparseable pre-filled timestamp is an error", func(t *testing.T) {
		body := []byte("hello world")
		req, err := http.NewRequest(http.MethodPost, "/somewhere", bytes.NewReader(body))
		assert.NoError(t, err)
		req.Header.Set(HeaderTimestamp, "half past nine")
		_, err = s.Sign(req, body)
		assert.Error(t, err)
	})
}
