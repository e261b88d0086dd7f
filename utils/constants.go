package utils

// Application constants
const (
	// Application name
	AppName = "ScholarBridge"

	// API version
	APIVersion = "v1"

	// Default port
	DefaultPort = "8080"

	// Default database host
	DefaultDBHost = "localhost"

	// Default database port
	DefaultDBPort = "5432"

	// Default database name
	DefaultDBName = "scholarbridge"

	// Default database user
	DefaultDBUser = "postgres"

	// Default database password
	DefaultDBPassword = "postgres"

	// Default pagination limit
	DefaultPaginationLimit = 10

	// Maximum pagination limit
	MaxPaginationLimit = 100
)

// Error messages
const (
	// Authentication errors
	ErrInvalidCredentials = "Invalid email or password"

	// Validation errors
	ErrInvalidAmount  = "Amount must be a positive decimal number"
	ErrInvalidFeeType = "Unknown fee type"

	// Server errors
	ErrInternalServer = "Internal server error"
)
