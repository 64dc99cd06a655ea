//go:generate ${TOOLS_PATH}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "Generator=Generator"
package token

import "github.com/klwxsrx/repertoire-hero/internal/session/domain"

type Generator interface {
	Generate() (domain.Token, error)
}
