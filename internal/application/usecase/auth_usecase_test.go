package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/internal/application/usecase"
	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/entity"
	"github.com/vendaflow/backoffice-api/pkg/jwt"
)

const testSecret = "segredo-de-teste"

func newAuthUseCase(t *testing.T, password string, userActive, companyActive bool) *usecase.AuthUseCase {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	company := retailCompany()
	company.IsActive = companyActive

	users := &fakeUserRepo{user: &entity.User{
		ID:           "u-1",
		CompanyID:    company.ID,
		Email:        "ana@loja.com",
		PasswordHash: string(hash),
		IsActive:     userActive,
	}}
	companies := &fakeCompanyRepo{companies: []*entity.Company{company}}

	return usecase.NewAuthUseCase(users, companies, usecase.AuthConfig{
		Secret:     testSecret,
		Issuer:     "backoffice-api",
		ExpMinutes: 60,
	})
}

func TestAuthUseCase_Login(t *testing.T) {
	uc := newAuthUseCase(t, "senha-forte", true, true)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "ana@loja.com",
		Password: "senha-forte",
	})
	require.NoError(t, err)

	assert.Equal(t, "loja-teste", resp.CompanyName)
	assert.Equal(t, 3600, resp.ExpiresIn)

	userID, companyName, err := jwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", userID)
	assert.Equal(t, "loja-teste", companyName, "o token carrega o vínculo de empresa")
}

func TestAuthUseCase_CredenciaisInvalidas(t *testing.T) {
	cases := []struct {
		name string
		uc   *usecase.AuthUseCase
		in   dto.LoginRequest
	}{
		{
			name: "senha incorreta",
			uc:   newAuthUseCase(t, "senha-forte", true, true),
			in:   dto.LoginRequest{Email: "ana@loja.com", Password: "senha-errada"},
		},
		{
			name: "usuário desconhecido",
			uc:   newAuthUseCase(t, "senha-forte", true, true),
			in:   dto.LoginRequest{Email: "ninguem@loja.com", Password: "senha-forte"},
		},
		{
			name: "usuário inativo",
			uc:   newAuthUseCase(t, "senha-forte", false, true),
			in:   dto.LoginRequest{Email: "ana@loja.com", Password: "senha-forte"},
		},
		{
			name: "empresa inativa",
			uc:   newAuthUseCase(t, "senha-forte", true, false),
			in:   dto.LoginRequest{Email: "ana@loja.com", Password: "senha-forte"},
		},
		{
			name: "credenciais vazias",
			uc:   newAuthUseCase(t, "senha-forte", true, true),
			in:   dto.LoginRequest{},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.uc.Login(context.Background(), tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrUnauthorized, "toda falha de credencial responde igual")
		})
	}
}
