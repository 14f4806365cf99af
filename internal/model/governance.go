package model

import "time"

// GovernanceConfig is stored as a single JSONB document on the tenant and
// updated whole-document through the mutation gateway.
type GovernanceConfig struct {
	Naming      []NamingRule     `json:"naming"`
	Security    []SecurityPolicy `json:"security"`
	Manuals     []ManualLink     `json:"manuals,omitempty"`
	CustomRoles []string         `json:"custom_roles,omitempty"`
}

type NamingRule struct {
	Rule    string `json:"rule"`
	Pattern string `json:"pattern"`
	Example string `json:"example"`
}

type SecurityPolicy struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ManualLink struct {
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	UpdatedAt time.Time `json:"updated_at"`
}
