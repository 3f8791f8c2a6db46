package spreadsheet

import (
	"fmt"

	"github.com/vendaflow/backoffice-api/internal/domain"
)

// FeatureFlags flags de configuração da empresa que selecionam a variante de
// schema gerada. Imutáveis durante uma chamada de geração/mutação.
type FeatureFlags struct {
	IsServiceSegment bool
	HasCatalog       bool
	HasProductCode   bool
	HasOrderCode     bool
}

// Validate rejeita as duas combinações sem sentido de negócio. Erros de
// configuração não são retryáveis: o cadastro da empresa precisa ser corrigido.
func (f FeatureFlags) Validate() error {
	if !f.HasCatalog && f.HasProductCode {
		return fmt.Errorf("%w: código de produto exige catálogo", domain.ErrConfiguration)
	}
	if !f.HasCatalog && !f.IsServiceSegment {
		return fmt.Errorf("%w: empresa fora do segmento de serviços precisa de catálogo", domain.ErrConfiguration)
	}
	return nil
}
