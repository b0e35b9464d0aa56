package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingParamsResponse(t *testing.T) {
	resp := MissingParamsResponse{
		Error:   "Missing parameters",
		Missing: []string{"issuer_id", "object_suffix"},
		Message: "Please provide the required parameters: issuer_id, class_suffix, object_suffix.",
	}

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"error": "Missing parameters",
		"missing": ["issuer_id", "object_suffix"],
		"message": "Please provide the required parameters: issuer_id, class_suffix, object_suffix."
	}`, string(data))
}

func TestNotFoundResponse(t *testing.T) {
	resp := NotFoundResponse{
		Error:              "Not Found",
		Message:            "The requested resource was not found.",
		AvailableEndpoints: []string{"/create-ticket/ (POST)"},
	}

	assert.Equal(t, "Not Found", resp.Error)
	assert.Len(t, resp.AvailableEndpoints, 1)
}

func TestPassIssuedMessage(t *testing.T) {
	msg := PassIssuedMessage{
		ObjectID:         "3388000000012345678.object-42",
		ClassID:          "3388000000012345678.class-7",
		EventName:        "Launch Party",
		TicketHolderName: "Ada Lovelace",
		TicketNumber:     "ABC123456789",
		WalletLink:       "https://pay.google.com/gp/v/save/eyJ...",
		Timestamp:        time.Now(),
	}

	assert.NotEmpty(t, msg.ObjectID)
	assert.NotEmpty(t, msg.ClassID)
	assert.NotEmpty(t, msg.WalletLink)

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"object_id"`)
	assert.Contains(t, string(data), `"wallet_link"`)
	assert.Contains(t, string(data), `"ticket_holder_name"`)
}

func TestErrorResponse(t *testing.T) {
	err := ErrorResponse{
		Error: "An error occurred while creating the class.",
	}

	data, marshalErr := json.Marshal(err)
	require.NoError(t, marshalErr)
	// message is omitted when empty so the body stays a single-key object
	assert.JSONEq(t, `{"error": "An error occurred while creating the class."}`, string(data))
}

func TestHealthResponse(t *testing.T) {
	resp := HealthResponse{
		Status: "healthy",
		Services: map[string]string{
			"wallet_api": "healthy",
			"rabbitmq":   "healthy",
		},
	}

	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, "healthy", resp.Services["wallet_api"])
}
