package dealer

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/dealerdesk/dealerdesk/internal/domain"
)

// dealerService implements domain.DealerService.
type dealerService struct {
	repo      domain.DealerRepository
	companies domain.CompanyRepository
}

// NewService creates a new DealerService. The company repository is used to
// verify that the referenced company exists before creating or moving a dealer.
func NewService(repo domain.DealerRepository, companies domain.CompanyRepository) domain.DealerService {
	return &dealerService{repo: repo, companies: companies}
}

// CreateDealer validates input, checks the parent company, and persists the dealer.
func (s *dealerService) CreateDealer(ctx context.Context, in domain.DealerInput) (*domain.Dealer, error) {
	in = normalizeInput(in)
	if err := validateDealer(in); err != nil {
		return nil, err
	}
	if _, err := s.companies.GetByID(ctx, in.CompanyID); err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "company does not exist", nil)
		}
		return nil, err
	}

	dealer := &domain.Dealer{
		CompanyID: in.CompanyID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		City:      in.City,
	}
	if err := s.repo.Create(ctx, dealer); err != nil {
		return nil, err
	}
	return dealer, nil
}

// GetDealer retrieves a dealer by ID.
func (s *dealerService) GetDealer(ctx context.Context, id uint) (*domain.Dealer, error) {
	return s.repo.GetByID(ctx, id)
}

// ListDealers returns a paginated list of dealers scoped to companyID (zero means all).
func (s *dealerService) ListDealers(ctx context.Context, req domain.PageRequest, companyID uint) (*domain.PageResult[domain.Dealer], error) {
	return s.repo.List(ctx, req, companyID)
}

// UpdateDealer loads the existing dealer, applies the changes, and persists them.
func (s *dealerService) UpdateDealer(ctx context.Context, id uint, in domain.DealerInput) (*domain.Dealer, error) {
	in = normalizeInput(in)
	if err := validateDealer(in); err != nil {
		return nil, err
	}

	dealer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.CompanyID != dealer.CompanyID {
		if _, err := s.companies.GetByID(ctx, in.CompanyID); err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, "company does not exist", nil)
			}
			return nil, err
		}
	}

	dealer.CompanyID = in.CompanyID
	dealer.Name = in.Name
	dealer.Email = in.Email
	dealer.Phone = in.Phone
	dealer.City = in.City

	if err := s.repo.Update(ctx, dealer); err != nil {
		return nil, err
	}
	return dealer, nil
}

// DeleteDealer removes a dealer by ID.
func (s *dealerService) DeleteDealer(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

func normalizeInput(in domain.DealerInput) domain.DealerInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.City = strings.TrimSpace(in.City)
	return in
}

func validateDealer(in domain.DealerInput) error {
	if in.CompanyID == 0 {
		return domain.NewAppError(domain.CodeValidation, "company_id is required", nil)
	}
	if in.Name == "" {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if utf8.RuneCountInString(in.Name) < 2 || utf8.RuneCountInString(in.Name) > 150 {
		return domain.NewAppError(domain.CodeValidation, "name must be between 2 and 150 characters", nil)
	}
	if in.Email == "" {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	return nil
}
