package errors

// Error code constants. Errors carry code + message; the manager UI decides
// final presentation.

// Property set error codes.
const (
	CodePropertySetNotFound = "PROPERTY_SET_NOT_FOUND"
	CodePropertySetExists   = "PROPERTY_SET_ALREADY_EXISTS"
	CodePropertySetSaveFail = "PROPERTY_SET_SAVE_FAILED"
)

// Category error codes.
const (
	CodeCategoryNotFound = "CATEGORY_NOT_FOUND"
	CodeCategoryExists   = "CATEGORY_ALREADY_EXISTS"
)

// Content type error codes.
const (
	CodeContentTypeNotFound = "CONTENT_TYPE_NOT_FOUND"
	CodeContentTypeExists   = "CONTENT_TYPE_ALREADY_EXISTS"
)

// Auth error codes.
const (
	CodeAuthFailed   = "AUTH_FAILED"
	CodeTokenExpired = "TOKEN_EXPIRED"
	CodeTokenInvalid = "TOKEN_INVALID"
)

// Generic request error codes.
const (
	CodeNotFound         = "NOT_FOUND"
	CodePermissionDenied = "PERMISSION_DENIED"
	CodeValidationFailed = "VALIDATION_FAILED"
	CodeMissingKey       = "MISSING_PRIMARY_KEY"
	CodeInternalError    = "INTERNAL_ERROR"
)
