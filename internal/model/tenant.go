package model

import "time"

type TenantPlan string

const (
	TenantPlanFree       TenantPlan = "Free"
	TenantPlanPro        TenantPlan = "Pro"
	TenantPlanEnterprise TenantPlan = "Enterprise"
)

type TenantStatus string

const (
	TenantStatusActive    TenantStatus = "Active"
	TenantStatusSuspended TenantStatus = "Suspended"
)

// Tenant is one customer organization, the unit of data isolation.
type Tenant struct {
	ID         TenantID         `json:"id"`
	Name       string           `json:"name"`
	Plan       TenantPlan       `json:"plan"`
	Status     TenantStatus     `json:"status"`
	OwnerEmail string           `json:"owner_email"`
	Governance GovernanceConfig `json:"governance"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

// TenantRef is the minimal public view used by invite-link previews.
type TenantRef struct {
	ID   TenantID `json:"id"`
	Name string   `json:"name"`
}

// TenantSnapshot is a tenant with all of its child entities, the unit the
// dashboard renders and the mutation gateway reloads after every write.
type TenantSnapshot struct {
	Tenant    Tenant     `json:"tenant"`
	Clinics   []Clinic   `json:"clinics"`
	Systems   []System   `json:"systems"`
	Employees []Employee `json:"employees"`
}

// TenantOverview is the superadmin list row: a tenant plus usage counts.
type TenantOverview struct {
	Tenant        Tenant `json:"tenant"`
	ClinicCount   int    `json:"clinic_count"`
	EmployeeCount int    `json:"employee_count"`
	SystemCount   int    `json:"system_count"`
}
