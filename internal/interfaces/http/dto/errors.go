package dto

import "net/http"

// Domain error codes surfaced over HTTP
const (
	CodeInvalidInput          = "INVALID_INPUT"
	CodeNotFound              = "NOT_FOUND"
	CodeCatalogUnavailable    = "CATALOG_UNAVAILABLE"
	CodeAuthenticationFailed  = "AUTHENTICATION_FAILED"
	CodeOrderSubmissionFailed = "ORDER_SUBMISSION_FAILED"
)

// statusByCode maps domain error codes to HTTP statuses. Upstream failures
// (catalog store, ERP) surface as 502: this service is acting as a gateway.
var statusByCode = map[string]int{
	CodeInvalidInput:          http.StatusBadRequest,
	CodeNotFound:              http.StatusNotFound,
	CodeCatalogUnavailable:    http.StatusBadGateway,
	CodeAuthenticationFailed:  http.StatusBadGateway,
	CodeOrderSubmissionFailed: http.StatusBadGateway,
}

// StatusForCode returns the HTTP status for a domain error code
func StatusForCode(code string) int {
	if status, ok := statusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
