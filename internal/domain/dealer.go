package domain

import "context"

// Dealer represents a sales outlet belonging to a company.
// CompanyID is the scope filter for dealer list queries.
type Dealer struct {
	BaseModel
	CompanyID uint   `gorm:"index;not null" json:"company_id"`
	Name      string `gorm:"size:150;not null" json:"name"`
	Email     string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     string `gorm:"size:30" json:"phone"`
	City      string `gorm:"size:100" json:"city"`
}

// DealerRepository defines the data access interface for dealers.
type DealerRepository interface {
	Create(ctx context.Context, dealer *Dealer) error
	GetByID(ctx context.Context, id uint) (*Dealer, error)
	List(ctx context.Context, req PageRequest, companyID uint) (*PageResult[Dealer], error)
	Update(ctx context.Context, dealer *Dealer) error
	Delete(ctx context.Context, id uint) error
}

// DealerInput carries the editable dealer fields.
type DealerInput struct {
	CompanyID uint
	Name      string
	Email     string
	Phone     string
	City      string
}

// DealerService defines the business logic interface for dealers.
// companyID scopes list queries; zero means all companies.
type DealerService interface {
	CreateDealer(ctx context.Context, in DealerInput) (*Dealer, error)
	GetDealer(ctx context.Context, id uint) (*Dealer, error)
	ListDealers(ctx context.Context, req PageRequest, companyID uint) (*PageResult[Dealer], error)
	UpdateDealer(ctx context.Context, id uint, in DealerInput) (*Dealer, error)
	DeleteDealer(ctx context.Context, id uint) error
}
