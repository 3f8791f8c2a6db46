package usecase

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/vendaflow/backoffice-api/internal/application/dto"
	"github.com/vendaflow/backoffice-api/internal/domain"
	"github.com/vendaflow/backoffice-api/internal/domain/repository"
	"github.com/vendaflow/backoffice-api/pkg/jwt"
)

// AuthConfig parâmetros de emissão de token.
type AuthConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// AuthUseCase autentica usuários e emite tokens JWT com o vínculo de empresa.
type AuthUseCase struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
	cfg       AuthConfig
}

func NewAuthUseCase(users repository.UserRepository, companies repository.CompanyRepository, cfg AuthConfig) *AuthUseCase {
	return &AuthUseCase{users: users, companies: companies, cfg: cfg}
}

// Login valida as credenciais e devolve um token assinado. Qualquer falha de
// credencial responde com domain.ErrUnauthorized, sem distinguir a causa.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrUnauthorized
	}

	user, err := uc.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	company, err := uc.companies.GetByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if company == nil || !company.IsActive {
		return nil, domain.ErrUnauthorized
	}

	token, err := jwt.Generate(uc.cfg.Secret, user.ID, company.CompanyName, uc.cfg.Issuer, uc.cfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:       token,
		ExpiresIn:   uc.cfg.ExpMinutes * 60,
		CompanyName: company.CompanyName,
	}, nil
}
