package service

import (
	"strings"

	"chairside.app/console/internal/model"
)

// systemPresets is the onboarding catalog of commonly subscribed systems.
var systemPresets = []model.SystemPreset{
	{Name: "Google Workspace", Category: "Groupware", URL: "https://workspace.google.com", BaseMonthlyCost: 0, MonthlyCostPerUser: 6.8},
	{Name: "Microsoft 365", Category: "Groupware", URL: "https://www.microsoft.com/microsoft-365", BaseMonthlyCost: 0, MonthlyCostPerUser: 7.2},
	{Name: "Slack", Category: "Communication", URL: "https://slack.com", BaseMonthlyCost: 0, MonthlyCostPerUser: 8.75},
	{Name: "Zoom", Category: "Communication", URL: "https://zoom.us", BaseMonthlyCost: 15.99, MonthlyCostPerUser: 0},
	{Name: "Dentrix Ascend", Category: "Practice Management", URL: "https://www.dentrixascend.com", BaseMonthlyCost: 500, MonthlyCostPerUser: 0},
	{Name: "Dropbox Business", Category: "Storage", URL: "https://www.dropbox.com/business", BaseMonthlyCost: 0, MonthlyCostPerUser: 15},
	{Name: "freee", Category: "Accounting", URL: "https://www.freee.co.jp", BaseMonthlyCost: 32, MonthlyCostPerUser: 0},
}

// SystemPresets returns the onboarding catalog.
func SystemPresets() []model.SystemPreset {
	out := make([]model.SystemPreset, len(systemPresets))
	copy(out, systemPresets)
	return out
}

func lookupPreset(name string) (model.SystemPreset, bool) {
	for _, preset := range systemPresets {
		if strings.EqualFold(preset.Name, name) {
			return preset, true
		}
	}
	return model.SystemPreset{}, false
}
