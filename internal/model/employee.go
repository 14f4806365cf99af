package model

import "time"

type EmploymentType string

const (
	EmploymentFullTime EmploymentType = "full_time"
	EmploymentPartTime EmploymentType = "part_time"
)

type EmployeeStatus string

const (
	EmployeeStatusActive      EmployeeStatus = "Active"
	EmployeeStatusOnboarding  EmployeeStatus = "Onboarding"
	EmployeeStatusOffboarding EmployeeStatus = "Offboarding"
)

// EmployeeRoleAdmin marks the administrative staff role seeded for the
// organization owner during bootstrap.
const EmployeeRoleAdmin = "admin"

type Employee struct {
	ID              string         `json:"id"`
	TenantID        TenantID       `json:"tenant_id"`
	ClinicID        *string        `json:"clinic_id,omitempty"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Email           string         `json:"email"`
	Role            string         `json:"role"` // free-form, tenants define custom roles
	EmploymentType  EmploymentType `json:"employment_type"`
	Status          EmployeeStatus `json:"status"`
	JoinDate        time.Time      `json:"join_date"`
	AssignedSystems []string       `json:"assigned_systems"`
	CreatedAt       time.Time      `json:"created_at"`
}
