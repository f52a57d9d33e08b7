package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/cakeshop/internal/domain"
)

// Problem codes carried in ErrorResponse.Code.
const (
	CodeValidation  = "validation"
	CodeNotFound    = "not_found"
	CodeForbidden   = "forbidden"
	CodeConflict    = "conflict"
	CodeUnavailable = "unavailable"
	CodeInternal    = "internal"
)

// ErrorResponse represents an RFC 9457 Problem Details response. Code is an
// extension member naming the domain error class, so clients can branch
// without parsing Detail.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Code     string        `json:"code"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail represents a single field-level validation error within
// an ErrorResponse.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
	Value    any    `json:"value,omitempty"`
}

// problemClass binds a domain sentinel to the status and code it is served as.
type problemClass struct {
	sentinel error
	status   int
	code     string
}

// problemClasses is checked in order; the first sentinel found in the chain
// wins. ErrUnavailable is a 503 because it reports this process (a closed
// store or a full live hub), not a dependency.
var problemClasses = []problemClass{
	{domain.ErrValidation, http.StatusBadRequest, CodeValidation},
	{domain.ErrNotFound, http.StatusNotFound, CodeNotFound},
	{domain.ErrForbidden, http.StatusForbidden, CodeForbidden},
	{domain.ErrConflict, http.StatusConflict, CodeConflict},
	{domain.ErrUnavailable, http.StatusServiceUnavailable, CodeUnavailable},
}

// NewErrorResponse creates an RFC 9457 ErrorResponse from a domain error.
// Instance is the request path. Errors outside the domain vocabulary are
// reported as a bare 500 and their text is not exposed.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status, code := classify(err)

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Code:     code,
		Detail:   err.Error(),
		Instance: r.URL.Path,
	}
	if code == CodeInternal {
		resp.Detail = http.StatusText(status)
	}

	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		resp.Errors = validationDetails(verr)
	}

	return resp
}

// WriteErrorResponse writes an RFC 9457 error response for the given domain
// error with Content-Type application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response",
			slog.Any("error", encErr),
		)
	}
}

func classify(err error) (int, string) {
	for _, pc := range problemClasses {
		if errors.Is(err, pc.sentinel) {
			return pc.status, pc.code
		}
	}
	return http.StatusInternalServerError, CodeInternal
}

// validationDetails lists the rejected fields in sorted order, located in the
// request body.
func validationDetails(verr *domain.ValidationError) []ErrorDetail {
	names := verr.FieldNames()
	details := make([]ErrorDetail, 0, len(names))
	for _, field := range names {
		details = append(details, ErrorDetail{
			Location: "body." + field,
			Message:  verr.Fields[field],
		})
	}
	return details
}
