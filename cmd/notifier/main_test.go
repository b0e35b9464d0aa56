package main

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/streadway/amqp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oskargbc/dws-wallet-service/internal/types"
)

func TestProcessPassMessage(t *testing.T) {
	msg := types.PassIssuedMessage{
		ObjectID:         "393.ticket-42",
		ClassID:          "393.summer-fest",
		EventName:        "Summer Fest",
		TicketHolderName: "Ada Lovelace",
		TicketNumber:     "T-0042",
		WalletLink:       "https://pay.google.com/gp/v/save/eyJ0est",
		Timestamp:        time.Now(),
	}
	body, err := json.Marshal(msg)
	require.NoError(t, err)

	assert.NoError(t, processPassMessage(amqp.Delivery{Body: body}))
}

func TestProcessPassMessageMalformed(t *testing.T) {
	// a body that never parses must error so the delivery gets dropped,
	// not acknowledged
	err := processPassMessage(amqp.Delivery{Body: []byte(`{not json`)})
	assert.Error(t, err)
}
