package model

import "time"

type ClinicType string

const (
	ClinicTypeHQ     ClinicType = "HQ"
	ClinicTypeBranch ClinicType = "Branch"
)

type Clinic struct {
	ID        string     `json:"id"`
	TenantID  TenantID   `json:"tenant_id"`
	Name      string     `json:"name"`
	Type      ClinicType `json:"type"`
	Address   string     `json:"address"`
	Chairs    int        `json:"chairs"`
	Phone     string     `json:"phone"`
	CreatedAt time.Time  `json:"created_at"`
}
