package utils

import (
	"errors"
	"io"
	"net/http"

	"github.com/goccy/go-json"
)

type Response struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

// ResponseJSON writes payload as JSON with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// DecodeJSON decodes the request body into dst. A body over the router's
// size limit yields *http.MaxBytesError.
func DecodeJSON(r *http.Request, dst any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, dst)
}

// ResponseDecodeError answers a DecodeJSON failure: 413 for an oversized body,
// 400 otherwise.
func ResponseDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		ResponseJSON(w, http.StatusRequestEntityTooLarge, Response{Message: "Request body too large"})
		return
	}
	ResponseBadRequest(w, "Invalid request body", nil)
}

// ------------- Success responses -------------

// returns 200 OK with a bare JSON document (lists, custom bodies)
func ResponseData(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusOK, Response{Message: message})
}

// returns 201 Created
func ResponseCreated(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusCreated, Response{Message: message})
}

// ------------- Error responses -------------

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	ResponseJSON(w, http.StatusBadRequest, Response{Message: message, Errors: errors})
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusUnauthorized, Response{Message: message})
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusForbidden, Response{Message: message})
}

// returns 409 Conflict
func ResponseConflict(w http.ResponseWriter, message string) {
	ResponseJSON(w, http.StatusConflict, Response{Message: message})
}

// returns 500 Internal Server Error. detail is omitted when empty.
func ResponseInternalError(w http.ResponseWriter, message, detail string) {
	ResponseJSON(w, http.StatusInternalServerError, Response{Message: message, Error: detail})
}
