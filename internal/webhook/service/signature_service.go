package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// SignatureService verifies the keyed hash the upstream platform attaches
// to every webhook delivery.
type SignatureService struct {
	secret []byte
}

func NewSignatureService(secret string) *SignatureService {
	return &SignatureService{secret: []byte(secret)}
}

// Verify reports whether header is the base64-encoded HMAC-SHA-256 of body
// under the shared secret. It fails closed: an unset secret or a missing
// header rejects the request. The digest comparison is constant time.
func (s *SignatureService) Verify(body []byte, header string) bool {
	if len(s.secret) == 0 || header == "" {
		return false
	}

	mac := hmac.New(sha256.New, s.secret)
	mac.Write(body)
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(header))
}
