package errors

// Error code constants
// Format: CATEGORY_SPECIFIC_DETAIL
// Clients map their messages from these codes

const (
	// ==================== Session (SESSION_) ====================
	SessionNotFound = "SESSION_NOT_FOUND" // unknown or ended session

	// ==================== Authorization (AUTHZ_) ====================
	AuthzForbidden = "AUTHZ_FORBIDDEN"  // no access
	AuthzAdminOnly = "AUTHZ_ADMIN_ONLY" // admin mode required

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"  // bad input
	ValidationInvalidFormat = "VALIDATION_INVALID_FORMAT" // malformed body
	ValidationRequired      = "VALIDATION_REQUIRED"       // missing field

	// ==================== Resource (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"      // resource missing
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS" // id collision
	ResourceConflict      = "RESOURCE_CONFLICT"       // conflicting state

	// ==================== Catalog (CATALOG_) ====================
	CatalogPersistenceDisabled = "CATALOG_PERSISTENCE_DISABLED" // no snapshot store configured
	CatalogExportFailed        = "CATALOG_EXPORT_FAILED"        // workbook could not be written

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"   // server error
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR" // database error
)
