package bootstrap

import "context"

// AuditLog adalah satu entri audit level proses (startup/shutdown dsb),
// bukan audit bisnis per record — itu hidup di tabel salary_audit_logs.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
