package sig

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"

	"github.com/golden-vcr/signing-common/canon"
)

// Sign computes the auth code for a parameter sequence: the sequence is
// canonicalized, an HMAC-SHA1 digest is computed over the canonical string's UTF-8
// bytes using the key's UTF-8 bytes, and the digest is returned base64-encoded. The
// same key and a value-equal parameter sequence always yield the same code. The key
// is used transiently and never retained.
func Sign(key string, params []canon.Param) (string, error) {
	s, err := canon.Canonicalize(params)
	if err != nil {
		return "", err
	}

	mac := hmac.New(sha1.New, []byte(key))
	mac.Write([]byte(s))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Signer computes auth codes using a secret that's fixed at construction time
type Signer interface {
	Sign(params []canon.Param) (string, error)
}

func NewSigner(secret string) Signer {
	return &signer{
		secret: secret,
	}
}

type signer struct {
	secret string
}

func (s *signer) Sign(params []canon.Param) (string, error) {
	return Sign(s.secret, params)
}

var _ Signer = (*signer)(nil)
