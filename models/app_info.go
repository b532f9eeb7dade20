package models

// AppInfo describes the running service. It is served by GET /version.
type AppInfo struct {
	Version     string `json:"version"`
	Storage     string `json:"storage"`
	AuthEnabled bool   `json:"auth_enabled"`
}
