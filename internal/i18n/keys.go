// Package i18n provides internationalization support for the kitforge service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyUnauthorized indicates missing or invalid authentication.
	ErrKeyUnauthorized = "error.unauthorized"
	// ErrKeyInvalidCredentials indicates invalid login credentials (user not registered or wrong password).
	ErrKeyInvalidCredentials = "error.invalid_credentials"
	// ErrKeyUserExists indicates an email or username that is already registered.
	ErrKeyUserExists = "error.user_exists"
	// ErrKeyForbidden indicates insufficient permissions.
	ErrKeyForbidden = "error.forbidden"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyUnknownMaterial indicates a material name not present in the catalog.
	ErrKeyUnknownMaterial = "error.unknown_material"
	// ErrKeyValidationInfill indicates an infill fraction outside the valid range.
	ErrKeyValidationInfill = "error.validation.infill_fraction"
	// ErrKeyValidationPrintSpeed indicates a non-positive print speed.
	ErrKeyValidationPrintSpeed = "error.validation.print_speed"
	// ErrKeyQuotaExceeded indicates the monthly kit card quota was reached.
	ErrKeyQuotaExceeded = "error.quota_exceeded"
	// ErrKeyUnsupportedFormat indicates an unsupported export format.
	ErrKeyUnsupportedFormat = "error.unsupported_format"
	// ErrKeyInvalidToken indicates an invalid or expired JWT token.
	ErrKeyInvalidToken = "error.invalid_token"
	// ErrKeyTokenRequired indicates that a JWT token is required.
	ErrKeyTokenRequired = "error.token_required"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
)

// Success message translation keys.
const (
	// SuccessKeyEstimateCalculated indicates a successful estimation run.
	SuccessKeyEstimateCalculated = "success.estimate_calculated"
)
