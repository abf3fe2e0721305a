package dealer

// CreateDealerRequest represents the input for creating a new dealer.
type CreateDealerRequest struct {
	CompanyID uint   `json:"company_id" form:"company_id" binding:"required"`
	Name      string `json:"name" form:"name" binding:"required,min=2,max=150"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Phone     string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	City      string `json:"city" form:"city" binding:"omitempty,max=100"`
}

// UpdateDealerRequest represents the input for updating an existing dealer.
type UpdateDealerRequest struct {
	CompanyID uint   `json:"company_id" form:"company_id" binding:"required"`
	Name      string `json:"name" form:"name" binding:"required,min=2,max=150"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Phone     string `json:"phone" form:"phone" binding:"omitempty,max=30"`
	City      string `json:"city" form:"city" binding:"omitempty,max=100"`
}
