package usecase_test

import (
	"context"

	"github.com/vendaflow/backoffice-api/internal/application/ports"
	"github.com/vendaflow/backoffice-api/internal/domain/entity"
)

// Dublês em memória das portas de persistência e dos serviços externos.

type fakeCompanyRepo struct {
	companies []*entity.Company
	configs   map[string]*entity.IntegrationConfig // por companyID
	upserted  *entity.IntegrationConfig
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) GetByName(_ context.Context, name string) (*entity.Company, error) {
	for _, c := range r.companies {
		if c.CompanyName == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCompanyRepo) List(_ context.Context, limit, offset int) ([]*entity.Company, error) {
	if offset >= len(r.companies) {
		return nil, nil
	}
	end := offset + limit
	if end > len(r.companies) {
		end = len(r.companies)
	}
	return r.companies[offset:end], nil
}

func (r *fakeCompanyRepo) GetIntegrationConfig(_ context.Context, companyID string) (*entity.IntegrationConfig, error) {
	return r.configs[companyID], nil
}

func (r *fakeCompanyRepo) UpsertIntegrationConfig(_ context.Context, cfg *entity.IntegrationConfig) error {
	if r.configs == nil {
		r.configs = map[string]*entity.IntegrationConfig{}
	}
	r.configs[cfg.CompanyID] = cfg
	r.upserted = cfg
	return nil
}

type fakeWebsiteRepo struct {
	names []string
}

func (r *fakeWebsiteRepo) ListActiveNames(context.Context, string) ([]string, error) {
	return r.names, nil
}

type fakeSellerRepo struct {
	seller *entity.Seller
}

func (r *fakeSellerRepo) GetByCompanyID(context.Context, string) (*entity.Seller, error) {
	return r.seller, nil
}

type fakeSizeRepo struct {
	sizes  []string
	called bool
}

func (r *fakeSizeRepo) DistinctSupplierSKUSizes(context.Context, string) ([]string, error) {
	r.called = true
	return r.sizes, nil
}

type fakeUserRepo struct {
	user *entity.User
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.user != nil && r.user.Email == email {
		return r.user, nil
	}
	return nil, nil
}

type fakeRenderer struct {
	in      ports.TemplateRenderInput
	content []byte
	err     error
}

func (f *fakeRenderer) Render(in ports.TemplateRenderInput) ([]byte, error) {
	f.in = in
	if f.err != nil {
		return nil, f.err
	}
	return f.content, nil
}

type fakePipeline struct {
	req    ports.BatchRequest
	result *ports.BatchResult
	err    error
}

func (f *fakePipeline) Submit(_ context.Context, req ports.BatchRequest) (*ports.BatchResult, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}
