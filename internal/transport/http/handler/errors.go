package handler

const (
	errInternalServer     = "Internal server error"
	errUserNotFound       = "User not found"
	errInvalidUserID      = "Invalid user ID"
	errDuplicateEmail     = "User with this email already exists"
	errValidation         = "Validation error"
	errInvalidCredentials = "Invalid email or password"

	msgUserDeleted = "User deleted successfully"
)
