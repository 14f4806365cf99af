package model

import "time"

type SystemStatus string

const (
	SystemStatusActive    SystemStatus = "Active"
	SystemStatusReview    SystemStatus = "Review"
	SystemStatusCanceling SystemStatus = "Canceling"
)

// System is one software subscription a tenant manages (practice management,
// imaging, accounting and so on).
type System struct {
	ID                 string       `json:"id"`
	TenantID           TenantID     `json:"tenant_id"`
	Name               string       `json:"name"`
	Category           string       `json:"category"`
	URL                string       `json:"url"`
	Status             SystemStatus `json:"status"`
	BaseMonthlyCost    float64      `json:"base_monthly_cost"`
	MonthlyCostPerUser float64      `json:"monthly_cost_per_user"`
	RenewalDate        *time.Time   `json:"renewal_date,omitempty"`
	AdminOwner         string       `json:"admin_owner"`
	VendorContact      string       `json:"vendor_contact"`
	Issues             []string     `json:"issues"`
	ContractURL        *string      `json:"contract_url,omitempty"`
	CreatedAt          time.Time    `json:"created_at"`
}

// SystemPreset is a catalog entry offered during onboarding.
type SystemPreset struct {
	Name               string  `json:"name"`
	Category           string  `json:"category"`
	URL                string  `json:"url"`
	BaseMonthlyCost    float64 `json:"base_monthly_cost"`
	MonthlyCostPerUser float64 `json:"monthly_cost_per_user"`
}
