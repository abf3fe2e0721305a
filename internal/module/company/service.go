package company

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

// companyService implements domain.CompanyService.
type companyService struct {
	repo domain.CompanyRepository
}

// NewService creates a new CompanyService with the given repository.
func NewService(repo domain.CompanyRepository) domain.CompanyService {
	return &companyService{repo: repo}
}

// CreateCompany validates input, builds a Company, and persists it via the repository.
func (s *companyService) CreateCompany(ctx context.Context, name, email, phone, address string) (*domain.Company, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateCompany(name, email); err != nil {
		return nil, err
	}

	company := &domain.Company{
		Name:    name,
		Email:   email,
		Phone:   strings.TrimSpace(phone),
		Address: strings.TrimSpace(address),
	}

	if err := s.repo.Create(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// GetCompany retrieves a company by ID.
func (s *companyService) GetCompany(ctx context.Context, id uint) (*domain.Company, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCompanies returns a paginated list of companies.
func (s *companyService) ListCompanies(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Company], error) {
	return s.repo.List(ctx, req)
}

// UpdateCompany loads the existing company, applies changes, and persists them.
func (s *companyService) UpdateCompany(ctx context.Context, id uint, name, email, phone, address string) (*domain.Company, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if err := validateCompany(name, email); err != nil {
		return nil, err
	}

	company, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	company.Name = name
	company.Email = email
	company.Phone = strings.TrimSpace(phone)
	company.Address = strings.TrimSpace(address)

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, err
	}

	return company, nil
}

// DeleteCompany removes a company by ID.
func (s *companyService) DeleteCompany(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// validateCompany checks the name and optional email.
func validateCompany(name, email string) error {
	if name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(name) < 2 {
		return domain.NewAppError(domain.CodeValidation, "name must be at least 2 characters", nil)
	}
	if utf8.RuneCountInString(name) > 150 {
		return domain.NewAppError(domain.CodeValidation, "name must be at most 150 characters", nil)
	}
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
		}
	}
	return nil
}
