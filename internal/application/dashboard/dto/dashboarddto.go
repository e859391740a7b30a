// Package dto defines the response types of the dashboard application
// layer.
package dto

// DashboardResponse carries the aggregate counts shown on the admin
// dashboard. Only active records are counted.
type DashboardResponse struct {
	Categories int64 `json:"categories"`
	Users      int64 `json:"users"`
	Videos     int64 `json:"videos"`
}
