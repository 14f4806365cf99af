package dto

import (
	"time"

	"chairside.app/console/internal/model"
)

type UpsertClinicRequest struct {
	ID      string `json:"id" binding:"omitempty,max=64"`
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Type    string `json:"type" binding:"required,oneof=HQ Branch"`
	Address string `json:"address" binding:"omitempty,max=512"`
	Chairs  int    `json:"chairs" binding:"omitempty,min=0"`
	Phone   string `json:"phone" binding:"omitempty,max=64"`
}

func (r *UpsertClinicRequest) ToModel() *model.Clinic {
	return &model.Clinic{
		ID:      r.ID,
		Name:    r.Name,
		Type:    model.ClinicType(r.Type),
		Address: r.Address,
		Chairs:  r.Chairs,
		Phone:   r.Phone,
	}
}

type UpsertSystemRequest struct {
	ID                 string     `json:"id" binding:"omitempty,max=64"`
	Name               string     `json:"name" binding:"required,min=1,max=255"`
	Category           string     `json:"category" binding:"omitempty,max=255"`
	URL                string     `json:"url" binding:"omitempty,url"`
	Status             string     `json:"status" binding:"omitempty,oneof=Active Review Canceling"`
	BaseMonthlyCost    float64    `json:"base_monthly_cost" binding:"omitempty,min=0"`
	MonthlyCostPerUser float64    `json:"monthly_cost_per_user" binding:"omitempty,min=0"`
	RenewalDate        *time.Time `json:"renewal_date,omitempty"`
	AdminOwner         string     `json:"admin_owner" binding:"omitempty,max=255"`
	VendorContact      string     `json:"vendor_contact" binding:"omitempty,max=512"`
	Issues             []string   `json:"issues" binding:"omitempty"`
	ContractURL        *string    `json:"contract_url,omitempty" binding:"omitempty"`
}

func (r *UpsertSystemRequest) ToModel() *model.System {
	status := model.SystemStatus(r.Status)
	if status == "" {
		status = model.SystemStatusActive
	}
	return &model.System{
		ID:                 r.ID,
		Name:               r.Name,
		Category:           r.Category,
		URL:                r.URL,
		Status:             status,
		BaseMonthlyCost:    r.BaseMonthlyCost,
		MonthlyCostPerUser: r.MonthlyCostPerUser,
		RenewalDate:        r.RenewalDate,
		AdminOwner:         r.AdminOwner,
		VendorContact:      r.VendorContact,
		Issues:             r.Issues,
		ContractURL:        r.ContractURL,
	}
}

type UpsertEmployeeRequest struct {
	ID             string     `json:"id" binding:"omitempty,max=64"`
	ClinicID       *string    `json:"clinic_id,omitempty" binding:"omitempty,max=64"`
	FirstName      string     `json:"first_name" binding:"required,min=1,max=255"`
	LastName       string     `json:"last_name" binding:"omitempty,max=255"`
	Email          string     `json:"email" binding:"required,email"`
	Role           string     `json:"role" binding:"omitempty,max=255"`
	EmploymentType string     `json:"employment_type" binding:"omitempty,oneof=full_time part_time"`
	Status         string     `json:"status" binding:"omitempty,oneof=Active Onboarding Offboarding"`
	JoinDate       *time.Time `json:"join_date,omitempty"`
}

func (r *UpsertEmployeeRequest) ToModel() *model.Employee {
	employee := &model.Employee{
		ID:             r.ID,
		ClinicID:       r.ClinicID,
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Role:           r.Role,
		EmploymentType: model.EmploymentType(r.EmploymentType),
		Status:         model.EmployeeStatus(r.Status),
	}
	if employee.EmploymentType == "" {
		employee.EmploymentType = model.EmploymentFullTime
	}
	if employee.Status == "" {
		employee.Status = model.EmployeeStatusActive
	}
	if r.JoinDate != nil {
		employee.JoinDate = *r.JoinDate
	} else {
		employee.JoinDate = time.Now()
	}
	return employee
}

type AssignSystemsRequest struct {
	SystemIDs []string `json:"system_ids" binding:"required"`
}

type InstallPresetsRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

type CreateOrganizationRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

type JoinTenantRequest struct {
	TenantID string `json:"tenant_id" binding:"required,max=64"`
}
