package utils

import (
	"encoding/json"
	"net/http"
)

// Problem is the body of every error response.
type Problem struct {
	Status    int               `json:"status"`
	Title     string            `json:"title"`
	Detail    string            `json:"detail,omitempty"`
	Instance  string            `json:"instance"`
	RequestID string            `json:"requestId,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// ResponseJSON writes data as JSON with custom status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 201 Created with a Location header
func ResponseCreated(w http.ResponseWriter, location string, data any) {
	w.Header().Set("Location", location)
	ResponseJSON(w, http.StatusCreated, data)
}

// returns 204 No Content
func ResponseNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

// ------------- Error responses -------------

// ResponseProblem writes a problem payload for r with the given status.
func ResponseProblem(w http.ResponseWriter, r *http.Request, code int, detail string, errors map[string]string) {
	problem := Problem{
		Status:   code,
		Title:    http.StatusText(code),
		Detail:   detail,
		Instance: r.URL.Path,
		Errors:   errors,
	}
	if requestID, ok := GetRequestIDFromContext(r.Context()); ok {
		problem.RequestID = requestID
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(problem)
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, r *http.Request, detail string, errors map[string]string) {
	ResponseProblem(w, r, http.StatusBadRequest, detail, errors)
}

// returns 404 Not Found
func ResponseNotFound(w http.ResponseWriter, r *http.Request, detail string) {
	ResponseProblem(w, r, http.StatusNotFound, detail, nil)
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, r *http.Request, detail string) {
	ResponseProblem(w, r, http.StatusConflict, detail, nil)
}

// returns 500 Internal Server Error
func ResponseInternalError(w http.ResponseWriter, r *http.Request) {
	ResponseProblem(w, r, http.StatusInternalServerError, "An unexpected error occurred.", nil)
}
