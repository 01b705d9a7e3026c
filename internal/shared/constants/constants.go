package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys set by the auth middleware
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
)
