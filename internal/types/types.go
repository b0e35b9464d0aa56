package types

import "time"

// MissingParamsResponse is returned when the issuance endpoint is called
// without the required identifier query parameters
type MissingParamsResponse struct {
	Error   string   `json:"error"`
	Missing []string `json:"missing"`
	Message string   `json:"message"`
}

// NotFoundResponse is returned for requests that match no route
type NotFoundResponse struct {
	Error              string   `json:"error"`
	Message            string   `json:"message"`
	AvailableEndpoints []string `json:"available_endpoints"`
}

// PassIssuedMessage represents a message published to RabbitMQ after a
// save link has been handed out
type PassIssuedMessage struct {
	ObjectID         string    `json:"object_id"`
	ClassID          string    `json:"class_id"`
	EventName        string    `json:"event_name"`
	TicketHolderName string    `json:"ticket_holder_name"`
	TicketNumber     string    `json:"ticket_number"`
	WalletLink       string    `json:"wallet_link"`
	Timestamp        time.Time `json:"timestamp"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Services map[string]string `json:"services,omitempty"`
	Status   string            `json:"status"`
}
