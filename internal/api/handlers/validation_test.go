package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	VenueID string `json:"venueId" validate:"required"`
	Guests  int    `json:"guests" validate:"gte=1"`
	Status  string `json:"status,omitempty" validate:"omitempty,oneof=pending created"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sampleRequest{VenueID: "v-1", Guests: 1}))

	details := Validate(sampleRequest{Status: "unknown"})
	require.Len(t, details, 3)
	assert.Equal(t, "this field is required", details["venueId"])
	assert.Equal(t, "value must be at least 1", details["guests"])
	assert.Equal(t, "value must be one of: pending created", details["status"])
}

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondError(rec, http.StatusConflict, "a booking request is already in progress")

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, CodeConflict, body.Code)
	assert.Equal(t, "a booking request is already in progress", body.Message)
}

func TestRespondInternalError_HidesDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondInternalError(rec)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"code":"internal_error","message":"internal server error"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var req sampleRequest

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"venueId":"v-1","guests":2}`))
	require.NoError(t, DecodeJSON(r, &req))
	assert.Equal(t, "v-1", req.VenueID)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"venueId":"v-1","unknown":true}`))
	assert.Error(t, DecodeJSON(r, &req))

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(r, &req))
}
