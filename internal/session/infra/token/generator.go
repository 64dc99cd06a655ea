package token

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/klwxsrx/repertoire-hero/internal/session/app/codec"
	"github.com/klwxsrx/repertoire-hero/internal/session/app/token"
	"github.com/klwxsrx/repertoire-hero/internal/session/domain"
)

type generator struct {
	entropy io.Reader
}

func NewGenerator() token.Generator {
	return NewGeneratorFromReader(rand.Reader)
}

func NewGeneratorFromReader(entropy io.Reader) token.Generator {
	return generator{entropy: entropy}
}

func (g generator) Generate() (domain.Token, error) {
	buf := make([]byte, domain.TokenEntropyBytes)
	_, err := io.ReadFull(g.entropy, buf)
	if err != nil {
		return "", fmt.Errorf("read token entropy: %w", err)
	}

	return domain.Token(codec.EncodeBase64URL(buf)), nil
}
