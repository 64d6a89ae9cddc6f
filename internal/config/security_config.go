package config

type SecurityLevel int

const (
	SecurityPublic    SecurityLevel = iota // No authentication
	SecurityOptional                       // Caller resolved when a token is present
	SecurityAccess                         // Access token required
)

// EndpointSecurityConfig maps route names to their required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Auth
	"auth.register": SecurityPublic,
	"auth.login":    SecurityPublic,

	// Ops
	"ops.health":  SecurityPublic,
	"ops.metrics": SecurityPublic,

	// Jobs - browsing allowed anonymously
	"jobs.list":       SecurityOptional,
	"jobs.get":        SecurityOptional,
	"jobs.create":     SecurityAccess,
	"jobs.update":     SecurityAccess,
	"jobs.setActive":  SecurityAccess,
	"jobs.delete":     SecurityAccess,
	"jobs.apply":      SecurityAccess,
	"jobs.applicants": SecurityAccess,

	// Applications
	"applications.mine":   SecurityAccess,
	"applications.get":    SecurityAccess,
	"applications.decide": SecurityAccess,

	// Me
	"me.profile":       SecurityAccess,
	"me.role":          SecurityAccess,
	"me.verification":  SecurityAccess,
	"me.notifications": SecurityAccess,
	"me.markRead":      SecurityAccess,

	// Community
	"community.directory": SecurityAccess,
	"community.stats":     SecurityPublic,

	// Admin
	"admin.verifications": SecurityAccess,
	"admin.members":       SecurityAccess,
	"admin.approve":       SecurityAccess,
	"admin.reject":        SecurityAccess,
	"admin.setRole":       SecurityAccess,
	"admin.setStatus":     SecurityAccess,
}

// GetSecurityLevel returns the security level for a given route name
func GetSecurityLevel(route string) SecurityLevel {
	if level, exists := EndpointSecurityConfig[route]; exists {
		return level
	}
	// Default to highest security for unknown endpoints
	return SecurityAccess
}
