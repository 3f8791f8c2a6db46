package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/internal/application/usecase"
	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/entity"
)

func TestCompanyUseCase_GetByName(t *testing.T) {
	uc := usecase.NewCompanyUseCase(&fakeCompanyRepo{companies: []*entity.Company{retailCompany()}})

	resp, err := uc.GetByName(context.Background(), "loja-teste")
	require.NoError(t, err)
	assert.Equal(t, "Loja Teste", resp.HumanizedName)
	assert.Equal(t, entity.SegmentRetail, resp.Segment)

	_, err = uc.GetByName(context.Background(), "fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyUseCase_IntegrationConfigDefaults(t *testing.T) {
	uc := usecase.NewCompanyUseCase(&fakeCompanyRepo{companies: []*entity.Company{retailCompany()}})

	cfg, err := uc.GetIntegrationConfig(context.Background(), "loja-teste")
	require.NoError(t, err)
	assert.True(t, cfg.HasProductCode, "sem registro valem os defaults históricos")
	assert.True(t, cfg.HasOrderCode)
}

func TestCompanyUseCase_UpdateIntegrationConfig(t *testing.T) {
	repo := &fakeCompanyRepo{companies: []*entity.Company{retailCompany()}}
	uc := usecase.NewCompanyUseCase(repo)

	cfg, err := uc.UpdateIntegrationConfig(context.Background(), "loja-teste", dto.IntegrationConfigRequest{
		HasProductCode: false,
		HasOrderCode:   true,
	})
	require.NoError(t, err)
	assert.False(t, cfg.HasProductCode)
	assert.True(t, cfg.HasOrderCode)

	require.NotNil(t, repo.upserted)
	assert.NotEmpty(t, repo.upserted.ID, "registro novo ganha ID")
	assert.Equal(t, "c-1", repo.upserted.CompanyID)

	// A leitura seguinte reflete a gravação.
	read, err := uc.GetIntegrationConfig(context.Background(), "loja-teste")
	require.NoError(t, err)
	assert.False(t, read.HasProductCode)
}

func TestCompanyUseCase_List(t *testing.T) {
	second := retailCompany()
	second.ID = "c-2"
	second.CompanyName = "outra-loja"
	repo := &fakeCompanyRepo{companies: []*entity.Company{retailCompany(), second}}
	uc := usecase.NewCompanyUseCase(repo)

	resp, err := uc.List(context.Background(), dto.PageRequest{Limit: 1, Offset: 1})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "outra-loja", resp.Items[0].CompanyName)
	assert.Equal(t, 1, resp.Page.Limit)

	resp, err = uc.List(context.Background(), dto.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 20, resp.Page.Limit, "paginação normalizada para o default")
}
