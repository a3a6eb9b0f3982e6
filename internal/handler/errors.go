package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorDetail is the machine-readable part of an error response body.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// writeJSON serializes v as the response body with the given status code.
// Encoding errors at this point cannot be reported to the client (headers
// are already written), so they are only logged.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("handler: encode response", "error", err)
	}
}

// notFound writes a 404 response. The caller supplies the human-readable
// message (e.g. "entry not found") because the handler is the layer that
// knows what was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}})
}

// validationError writes a 400 response. The message is extracted from the
// wrapped domain.ErrValidation error.
func validationError(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}})
}

// badRequest writes a 400 response for a request rejected before reaching
// the service layer (e.g. missing or malformed body).
func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}})
}

// unauthorized writes a 401 response. The message is always the same
// generic string regardless of what failed, so callers cannot distinguish
// a wrong user from a wrong password.
func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, ErrorResponse{Error: ErrorDetail{Code: "unauthorized", Message: "invalid password"}})
}

// internalError logs the unexpected error and writes an opaque 500 response.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "handler: internal error", "error", err, "path", r.URL.Path)
	writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorDetail{Code: "internal_error", Message: "internal server error"}})
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.EntryService.Create: validation error: content is required" → "content is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, prefix := range []string{
		"service.EntryService.Create: validation error: ",
		"service.EntryService.Update: validation error: ",
		"service.EntryService.List: validation error: ",
		"service.EntryService.Stats: validation error: ",
		"validation error: ",
	} {
		if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
			return msg[len(prefix):]
		}
	}
	return msg
}
