//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Signer=Signer"
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/codec"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
)

var ErrEmptyKey = errors.New("signing key is empty")

// Signer authenticates a message with a key derived from the session token.
type Signer interface {
	Sign(key domain.Token, message string) (string, error)
	Verify(key domain.Token, message, signature string) bool
}

type hmacSigner struct{}

// NewHMACSigner signs with HMAC-SHA-256 and encodes the digest as base64url.
func NewHMACSigner() Signer {
	return hmacSigner{}
}

func (s hmacSigner) Sign(key domain.Token, message string) (string, error) {
	if key.IsEmpty() {
		return "", ErrEmptyKey
	}

	mac := hmac.New(sha256.New, []byte(key))
	_, err := mac.Write([]byte(message))
	if err != nil {
		return "", fmt.Errorf("compute hmac: %w", err)
	}

	return codec.EncodeBase64URL(mac.Sum(nil)), nil
}

func (s hmacSigner) Verify(key domain.Token, message, signature string) bool {
	expected, err := s.Sign(key, message)
	if err != nil {
		return false
	}

	return codec.ConstantTimeEqual([]byte(expected), []byte(signature))
}

// SignIdentity encodes the identity and signs the encoded form with token.
func SignIdentity(signer Signer, token domain.Token, identity domain.Identity) (domain.SignedEnvelope, error) {
	payload, err := codec.EncodeIdentity(identity)
	if err != nil {
		return domain.SignedEnvelope{}, err
	}

	sig, err := signer.Sign(token, payload)
	if err != nil {
		return domain.SignedEnvelope{}, fmt.Errorf("sign identity: %w", err)
	}

	return domain.SignedEnvelope{
		Token:     token,
		Payload:   payload,
		Signature: sig,
	}, nil
}
