package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/codec"
	"github.com/klwxsrx/repertoire-hero/internal/session/app/service"
	"github.com/klwxsrx/repertoire-hero/internal/session/app/signature"
	sessionappsignaturemock "github.com/klwxsrx/repertoire-hero/internal/session/app/signature/mock"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
)

func TestGate_Verify_Returns(t *testing.T) {
	const tkn = domain.Token("cookie-token")
	signer := signature.NewHMACSigner()
	identity := domain.Identity{Name: "Ada", Picture: "https://www.gravatar.com/avatar/?d=mp", Title: "Musician"}

	envelope, err := signature.SignIdentity(signer, tkn, identity)
	require.NoError(t, err)

	tamperedSig := []byte(envelope.Signature)
	tamperedSig[len(tamperedSig)/2] ^= 0x01

	garbage := codec.EncodeBase64URL([]byte("not json"))
	garbageSig, err := signer.Sign(tkn, garbage)
	require.NoError(t, err)

	tests := []struct {
		name        string
		credentials domain.Credentials
		expect      func(t *testing.T, identity *domain.Identity, err error)
	}{
		{
			name:        "anonymous_when_tokens_match_without_identity",
			credentials: domain.Credentials{CookieToken: tkn, HeaderToken: tkn},
			expect: func(t *testing.T, result *domain.Identity, err error) {
				require.NoError(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "identity_when_signature_valid",
			credentials: domain.Credentials{
				CookieToken:   tkn,
				HeaderToken:   tkn,
				User:          envelope.Payload,
				UserSignature: envelope.Signature,
			},
			expect: func(t *testing.T, result *domain.Identity, err error) {
				require.NoError(t, err)
				require.NotNil(t, result)
				assert.Equal(t, identity, *result)
			},
		},
		{
			name: "anonymous_when_signed_payload_is_malformed",
			credentials: domain.Credentials{
				CookieToken:   tkn,
				HeaderToken:   tkn,
				User:          garbage,
				UserSignature: garbageSig,
			},
			expect: func(t *testing.T, result *domain.Identity, err error) {
				require.NoError(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name:        "missing_token_when_header_absent",
			credentials: domain.Credentials{CookieToken: tkn},
			expect: func(t *testing.T, _ *domain.Identity, err error) {
				assert.ErrorIs(t, err, domain.ErrMissingToken)
			},
		},
		{
			name:        "missing_token_when_cookie_absent",
			credentials: domain.Credentials{HeaderToken: tkn},
			expect: func(t *testing.T, _ *domain.Identity, err error) {
				assert.ErrorIs(t, err, domain.ErrMissingToken)
			},
		},
		{
			name: "mismatch_regardless_of_valid_signature",
			credentials: domain.Credentials{
				CookieToken:   tkn,
				HeaderToken:   "other-token",
				User:          envelope.Payload,
				UserSignature: envelope.Signature,
			},
			expect: func(t *testing.T, _ *domain.Identity, err error) {
				assert.ErrorIs(t, err, domain.ErrTokenMismatch)
			},
		},
		{
			name: "invalid_signature_when_tampered",
			credentials: domain.Credentials{
				CookieToken:   tkn,
				HeaderToken:   tkn,
				User:          envelope.Payload,
				UserSignature: string(tamperedSig),
			},
			expect: func(t *testing.T, _ *domain.Identity, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidSignature)
			},
		},
		{
			name: "invalid_signature_when_absent",
			credentials: domain.Credentials{
				CookieToken: tkn,
				HeaderToken: tkn,
				User:        envelope.Payload,
			},
			expect: func(t *testing.T, _ *domain.Identity, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidSignature)
			},
		},
		{
			name: "invalid_signature_when_signed_with_other_token",
			credentials: func() domain.Credentials {
				other, err := signature.SignIdentity(signer, "previous-token", identity)
				require.NoError(t, err)
				return domain.Credentials{
					CookieToken:   tkn,
					HeaderToken:   tkn,
					User:          other.Payload,
					UserSignature: other.Signature,
				}
			}(),
			expect: func(t *testing.T, _ *domain.Identity, err error) {
				assert.ErrorIs(t, err, domain.ErrInvalidSignature)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result, err := service.NewGate(signer).Verify(context.Background(), tc.credentials)
			tc.expect(t, result, err)
		})
	}
}

func TestGate_Verify_ChecksTokenBeforeSignature(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the signer must not be consulted when the token check fails
	signer := sessionappsignaturemock.NewSigner(ctrl)

	_, err := service.NewGate(signer).Verify(context.Background(), domain.Credentials{
		CookieToken:   "a",
		HeaderToken:   "b",
		User:          "payload",
		UserSignature: "sig",
	})
	assert.ErrorIs(t, err, domain.ErrTokenMismatch)
}

func TestGate_Verify_KeysSignatureWithCookieToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	payload, err := codec.EncodeIdentity(domain.Identity{Name: "Ada"})
	require.NoError(t, err)

	signer := sessionappsignaturemock.NewSigner(ctrl)
	signer.EXPECT().Verify(domain.Token("tkn"), payload, "sig").Return(true)

	result, err := service.NewGate(signer).Verify(context.Background(), domain.Credentials{
		CookieToken:   "tkn",
		HeaderToken:   "tkn",
		User:          payload,
		UserSignature: "sig",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ada", result.Name)
}

func TestGate_Authenticate_ReturnsAuthentication(t *testing.T) {
	gate := service.NewGate(signature.NewHMACSigner())

	authentication, err := gate.Authenticate(context.Background(), domain.Credentials{CookieToken: "t", HeaderToken: "t"})
	require.NoError(t, err)
	assert.False(t, authentication.IsAuthenticated())
	assert.Nil(t, authentication.Principal())

	_, err = gate.Authenticate(context.Background(), domain.Credentials{CookieToken: "t", HeaderToken: "u"})
	assert.ErrorIs(t, err, domain.ErrTokenMismatch)
}
