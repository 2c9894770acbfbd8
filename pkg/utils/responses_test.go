package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseHelpers(t *testing.T) {
	rec := httptest.NewRecorder()
	ResponseCreated(rec, "User registered successfully")
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"User registered successfully"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ResponseBadRequest(rec, "All fields are required", map[string]string{"email": "This field is required"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"message":"All fields are required","errors":{"email":"This field is required"}}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ResponseInternalError(rec, "Signup failed", "")
	assert.JSONEq(t, `{"message":"Signup failed"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	ResponseData(rec, []string{})
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Drama"}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Drama", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(req, &dst))
}

func TestResponseDecodeError(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"`+strings.Repeat("x", 64)+`"}`))
	rec := httptest.NewRecorder()
	req.Body = http.MaxBytesReader(rec, req.Body, 16)

	err := DecodeJSON(req, &dst)
	require.Error(t, err)
	ResponseDecodeError(rec, err)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.JSONEq(t, `{"message":"Request body too large"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	rec = httptest.NewRecorder()
	ResponseDecodeError(rec, DecodeJSON(req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
