package company

// CreateCompanyRequest represents the input for creating a new company.
type CreateCompanyRequest struct {
	Name    string `json:"name" form:"name" binding:"required,min=2,max=150"`
	Email   string `json:"email" form:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	Address string `json:"address" form:"address" binding:"omitempty,max=255"`
}

// UpdateCompanyRequest represents the input for updating an existing company.
type UpdateCompanyRequest struct {
	Name    string `json:"name" form:"name" binding:"required,min=2,max=150"`
	Email   string `json:"email" form:"email" binding:"omitempty,email"`
	Phone   string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	Address string `json:"address" form:"address" binding:"omitempty,max=255"`
}
