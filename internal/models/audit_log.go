package models

// AuditLog records catalog and allocation mutations for traceability.
// There is no authentication layer, so the only caller identity available
// is the client IP.
type AuditLog struct {
	Base
	Action       string `gorm:"not null" json:"action"`
	ResourceType string `gorm:"not null" json:"resourceType"`
	ResourceID   string `gorm:"index" json:"resourceId"`
	IPAddress    string `json:"ipAddress"`
	Changes      string `json:"changes,omitempty"`
}
