package errors

import "strings"

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal       ErrorCode = "COMMON_001"
	ErrCodeBadRequest     ErrorCode = "COMMON_002"
	ErrCodeNotFound       ErrorCode = "COMMON_005"
	ErrCodeConflict       ErrorCode = "COMMON_006"
	ErrCodeValidation     ErrorCode = "COMMON_010"
	ErrCodeSerialization  ErrorCode = "COMMON_011"
	ErrCodeNotImplemented ErrorCode = "COMMON_016"
)

// Catalog Module Error Codes
const (
	ErrCodeCatalogInvalidRecord ErrorCode = "CATALOG_001"
	ErrCodeCatalogDuplicateKey  ErrorCode = "CATALOG_002"
	ErrCodeCatalogUnknownSymbol ErrorCode = "CATALOG_003"
	ErrCodeCatalogInvalidLayout ErrorCode = "CATALOG_004"
	ErrCodeCatalogUnreadable    ErrorCode = "CATALOG_005"
)

// Formula Module Error Codes
const (
	ErrCodeFormulaInvalid ErrorCode = "FORMULA_001"
)

// Render Module Error Codes
const (
	ErrCodeRenderFailed ErrorCode = "RENDER_001"
	ErrCodeFontLoad     ErrorCode = "RENDER_002"
)

// Aliases used at call sites.
const (
	CodeOK             = ErrorCode("OK")
	CodeUnknown        = ErrorCode("UNKNOWN")
	CodeInternal       = ErrCodeInternal
	CodeInvalidParam   = ErrCodeBadRequest
	CodeNotFound       = ErrCodeNotFound
	CodeConflict       = ErrCodeConflict
	CodeValidation     = ErrCodeValidation
	CodeNotImplemented = ErrCodeNotImplemented

	CodeInvalidRecord  = ErrCodeCatalogInvalidRecord
	CodeDuplicateKey   = ErrCodeCatalogDuplicateKey
	CodeUnknownSymbol  = ErrCodeCatalogUnknownSymbol
	CodeInvalidLayout  = ErrCodeCatalogInvalidLayout
	CodeCatalogSource  = ErrCodeCatalogUnreadable
	CodeInvalidFormula = ErrCodeFormulaInvalid
	CodeRenderFailed   = ErrCodeRenderFailed
)

// errorMessages holds the default human-readable message for each code.
var errorMessages = map[ErrorCode]string{
	ErrCodeInternal:       "internal error",
	ErrCodeBadRequest:     "bad request",
	ErrCodeNotFound:       "resource not found",
	ErrCodeConflict:       "resource conflict",
	ErrCodeValidation:     "validation failed",
	ErrCodeSerialization:  "serialization failed",
	ErrCodeNotImplemented: "not implemented",

	ErrCodeCatalogInvalidRecord: "catalog record is invalid",
	ErrCodeCatalogDuplicateKey:  "catalog contains a duplicate key",
	ErrCodeCatalogUnknownSymbol: "catalog references an unknown element symbol",
	ErrCodeCatalogInvalidLayout: "table layout is invalid",
	ErrCodeCatalogUnreadable:    "catalog source could not be read",

	ErrCodeFormulaInvalid: "chemical formula could not be parsed",

	ErrCodeRenderFailed: "frame rendering failed",
	ErrCodeFontLoad:     "font could not be loaded",
}

// DefaultMessageForCode returns the default message registered for code, or
// "unknown error" when none exists.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "unknown error"
}

// ModuleForCode returns the module prefix of code ("CATALOG" for
// "CATALOG_002").  Codes without an underscore return "UNKNOWN".
func ModuleForCode(code ErrorCode) string {
	parts := strings.SplitN(string(code), "_", 2)
	if len(parts) != 2 || parts[0] == "" {
		return "UNKNOWN"
	}
	return parts[0]
}

// IsCatalogError reports whether code belongs to the catalog module.
func IsCatalogError(code ErrorCode) bool {
	return ModuleForCode(code) == "CATALOG"
}
