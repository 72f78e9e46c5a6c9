package pages

import (
	"recall/models"
)

// DashboardViewModel holds what the dashboard shell needs before the list loads
type DashboardViewModel struct {
	Title     string
	CSRFToken string
	Selector  models.Selector
}

// CallsURL is the fragment endpoint htmx loads for the selected tab
func (vm DashboardViewModel) CallsURL() string {
	return "/dashboard/calls?tab=" + string(vm.Selector)
}
