package registry

// ProductRow is one row of the upstream registry's product catalog.
type ProductRow struct {
	ID           uint   `json:"id"`
	CompanyID    uint   `json:"company_id"`
	Name         string `json:"name"`
	SKU          string `json:"sku"`
	WarrantyDays int    `json:"warranty_days"`
}

// DealerRow is one row of the upstream registry's dealer directory.
type DealerRow struct {
	ID        uint   `json:"id"`
	CompanyID uint   `json:"company_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	City      string `json:"city"`
}
