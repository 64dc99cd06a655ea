package token_test

import (
	"bytes"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/codec"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
	"github.com/klwxsrx/repertoire-hero/internal/session/infra/token"
)

func TestGenerator_Generate_ReturnsBase64URLOfEntropy(t *testing.T) {
	tkn, err := token.NewGenerator().Generate()
	require.NoError(t, err)
	assert.Len(t, string(tkn), 32)

	decoded, err := codec.DecodeBase64URL(string(tkn))
	require.NoError(t, err)
	assert.Len(t, decoded, domain.TokenEntropyBytes)
}

func TestGenerator_Generate_ReturnsDistinctTokens(t *testing.T) {
	generator := token.NewGenerator()
	seen := make(map[domain.Token]struct{})
	for range 100 {
		tkn, err := generator.Generate()
		require.NoError(t, err)
		_, duplicate := seen[tkn]
		require.False(t, duplicate)
		seen[tkn] = struct{}{}
	}
}

func TestGenerator_Generate_UsesReader(t *testing.T) {
	entropy := bytes.Repeat([]byte{0xff}, domain.TokenEntropyBytes)

	tkn, err := token.NewGeneratorFromReader(bytes.NewReader(entropy)).Generate()
	require.NoError(t, err)
	assert.Equal(t, domain.Token("________________________________"), tkn)
}

func TestGenerator_Generate_ShortEntropy_ReturnsError(t *testing.T) {
	_, err := token.NewGeneratorFromReader(bytes.NewReader([]byte{1, 2, 3})).Generate()
	assert.Error(t, err)

	_, err = token.NewGeneratorFromReader(iotest.ErrReader(assert.AnError)).Generate()
	assert.ErrorIs(t, err, assert.AnError)
}
