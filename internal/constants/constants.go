package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	MaxPage         = 1_000_000
)

// Validation
const (
	MinPasswordLength = 6
	// bcrypt rejects longer inputs.
	MaxPasswordLength = 72
	MaxTitleLength    = 255
)

// Auth
const (
	TokenIssuer = "todo-api"
)
