package domain

// AuditLogger provides a simple interface for logging audit events.
type AuditLogger interface {
	Log(action string, actor string, metadata map[string]interface{}) error
}
