package domain

import "context"

// Company represents a manufacturer whose products are sold through dealers.
type Company struct {
	BaseModel
	Name    string `gorm:"size:150;uniqueIndex;not null" json:"name"`
	Email   string `gorm:"size:255" json:"email"`
	Phone   string `gorm:"size:30" json:"phone"`
	Address string `gorm:"size:255" json:"address"`
}

// CompanyRepository defines the data access interface for companies.
type CompanyRepository interface {
	Create(ctx context.Context, company *Company) error
	GetByID(ctx context.Context, id uint) (*Company, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Company], error)
	Update(ctx context.Context, company *Company) error
	Delete(ctx context.Context, id uint) error
}

// CompanyService defines the business logic interface for companies.
type CompanyService interface {
	CreateCompany(ctx context.Context, name, email, phone, address string) (*Company, error)
	GetCompany(ctx context.Context, id uint) (*Company, error)
	ListCompanies(ctx context.Context, req PageRequest) (*PageResult[Company], error)
	UpdateCompany(ctx context.Context, id uint, name, email, phone, address string) (*Company, error)
	DeleteCompany(ctx context.Context, id uint) error
}
