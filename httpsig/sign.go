package httpsig

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golden-vcr/signing-common/sig"
	"github.com/google/uuid"
)

type Signer interface {
	Sign(req *http.Request, body []byte) (*http.Request, error)
}

func NewSigner(secret string) Signer {
	return &signer{
		s: sig.NewSigner(secret),
	}
}

type signer struct {
	s sig.Signer
}

func (s *signer) Sign(req *http.Request, body []byte) (*http.Request, error) {
	requestId := req.Header.Get(HeaderRequestId)
	if requestId == "" {
		requestId = uuid.NewString()
		req.Header.Set(HeaderRequestId, requestId)
	}

	timestampValue := req.Header.Get(HeaderTimestamp)
	if timestampValue == "" {
		timestampValue = time.Now().UTC().Format(time.RFC3339)
		req.Header.Set(HeaderTimestamp, timestampValue)
	}
	timestamp, err := time.Parse(time.RFC3339, timestampValue)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s header: %w", HeaderTimestamp, err)
	}

	code, err := s.s.Sign(requestParams(requestId, timestamp, body))
	if err != nil {
		return nil, fmt.Errorf("failed to compute auth code: %w", err)
	}
	req.Header.Set(HeaderCode, code)
	return req, nil
}

var _ Signer = (*signer)(nil)
