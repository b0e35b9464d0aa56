package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskargbc/dws-wallet-service/internal/ticket"
)

func TestCreateClassAlreadyExists(t *testing.T) {
	fake := &vendorFake{getStatus: http.StatusOK, getBody: `{"id":"393.summer-fest"}`}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	result, err := svc.CreateClass(context.Background(), "393", "summer-fest", ticket.Defaults())
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "exists",
		"message": "The class already exists.",
		"issuer_id": "393",
		"class_suffix": "summer-fest",
		"class_id": "393.summer-fest",
		"has_error": true
	}`, string(data))

	assert.Equal(t, []string{"/eventTicketClass/393.summer-fest"}, fake.getPaths)
	assert.Empty(t, fake.inserts)
}

func TestCreateClassInvalidResourceID(t *testing.T) {
	fake := &vendorFake{
		getStatus: http.StatusBadRequest,
		getBody:   `{"error":{"code":400,"message":"Invalid resource ID","status":"INVALID_ARGUMENT"}}`,
	}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	result, err := svc.CreateClass(context.Background(), "393", "bad id", ticket.Defaults())
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "invalid_request",
		"message": "Invalid resource ID.",
		"error": {"code":400,"message":"Invalid resource ID","status":"INVALID_ARGUMENT"},
		"has_error": true
	}`, string(data))
}

func TestCreateClassCheckFails(t *testing.T) {
	fake := &vendorFake{getStatus: http.StatusServiceUnavailable, getBody: `{"error":{"code":503}}`}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	result, err := svc.CreateClass(context.Background(), "393", "summer-fest", ticket.Defaults())
	require.NoError(t, err)

	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"status": "error",
		"message": "An unexpected error occurred while checking class existence. Please try again later.",
		"has_error": true
	}`, string(data))
	assert.Empty(t, fake.inserts)
}

func TestCreateClassCreates(t *testing.T) {
	fake := &vendorFake{
		getStatus:    http.StatusNotFound,
		getBody:      `{"error":{"code":404}}`,
		insertStatus: http.StatusOK,
		insertBody:   `{"id":"393.summer-fest","reviewStatus":"UNDER_REVIEW"}`,
	}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	fields := ticket.Normalize(ticket.Defaults(), map[string]any{
		"event_name":  "Summer Fest",
		"issuer_name": "DWS Events",
	})

	svc := newTestService(t, srv.URL)
	result, err := svc.CreateClass(context.Background(), "393", "summer-fest", fields)
	require.NoError(t, err)

	assert.Equal(t, StatusCreated, result.Status)
	assert.Equal(t, "Class successfully created.", result.Message)
	assert.Equal(t, "393.summer-fest", result.ClassID)
	assert.False(t, result.HasError)

	echo, ok := result.Response.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "UNDER_REVIEW", echo["reviewStatus"])

	var sent map[string]any
	require.NoError(t, json.Unmarshal(fake.lastInsert(t), &sent))
	assert.Equal(t, "393.summer-fest", sent["id"])
	assert.Equal(t, "393.summer-fest", sent["eventId"])
	assert.Equal(t, "DWS Events", sent["issuerName"])
	assert.Equal(t, "UNDER_REVIEW", sent["reviewStatus"])

	eventName, ok := sent["eventName"].(map[string]any)
	require.True(t, ok)
	defaultValue, ok := eventName["defaultValue"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "en-US", defaultValue["language"])
	assert.Equal(t, "Summer Fest", defaultValue["value"])
}

func TestCreateClassInsertRejected(t *testing.T) {
	fake := &vendorFake{
		getStatus:    http.StatusNotFound,
		insertStatus: http.StatusForbidden,
		insertBody:   `{"error":{"code":403,"message":"quota exceeded"}}`,
	}
	srv := httptest.NewServer(fake.handler())
	defer srv.Close()

	svc := newTestService(t, srv.URL)
	result, err := svc.CreateClass(context.Background(), "393", "summer-fest", ticket.Defaults())

	// a rejected insert is a hard failure, not an envelope
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestCreateClassTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	svc := newTestService(t, srv.URL)
	result, err := svc.CreateClass(context.Background(), "393", "summer-fest", ticket.Defaults())
	assert.Error(t, err)
	assert.Nil(t, result)
}
