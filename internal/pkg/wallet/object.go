package wallet

import (
	"context"
	"fmt"
	"net/http"

	"github.com/oskargbc/dws-wallet-service/internal/ticket"
)

// CreateObject ensures the event ticket object issuerID.objectSuffix
// exists under the class issuerID.classSuffix, creating it from the
// ticket fields when it does not. A class that is missing or unusable
// surfaces as a class_not_found result on the insert.
func (s *Service) CreateObject(ctx context.Context, issuerID, classSuffix, objectSuffix string, fields ticket.Fields) (*ObjectResult, error) {
	objectID := fmt.Sprintf("%s.%s", issuerID, objectSuffix)
	classID := fmt.Sprintf("%s.%s", issuerID, classSuffix)

	status, body, err := s.do(ctx, http.MethodGet, s.baseURL+"/eventTicketObject/"+objectID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check object %s: %w", objectID, err)
	}

	switch {
	case status == http.StatusBadRequest:
		return &ObjectResult{
			Status:   StatusInvalidRequest,
			Message:  "Invalid resource ID.",
			Error:    errorDetail(body),
			HasError: true,
		}, nil
	case status >= 200 && status < 300:
		return &ObjectResult{
			ObjectID: objectID,
			Status:   StatusExists,
			Message:  fmt.Sprintf("Object %s already exists!", objectID),
			HasError: true,
		}, nil
	case status != http.StatusNotFound:
		return &ObjectResult{
			ObjectID: objectID,
			Status:   StatusError,
			Message:  "An error occurred while checking the object existence.",
			Error:    errorDetail(body),
			HasError: true,
		}, nil
	}

	payload, err := newObjectPayload(objectID, classID, fields)
	if err != nil {
		return nil, err
	}

	status, body, err = s.do(ctx, http.MethodPost, s.baseURL+"/eventTicketObject", payload)
	if err != nil {
		return nil, fmt.Errorf("failed to insert object %s: %w", objectID, err)
	}

	switch {
	case status >= 200 && status < 300:
		return &ObjectResult{
			ObjectID: objectID,
			Status:   StatusCreated,
			Message:  "Object created successfully.",
			Response: responseEcho(body),
			HasError: false,
		}, nil
	case status == http.StatusNotFound:
		return &ObjectResult{
			ObjectID: objectID,
			Status:   StatusClassNotFound,
			Message:  fmt.Sprintf("Wallet Object Class %s not found.", classID),
			HasError: true,
		}, nil
	default:
		return &ObjectResult{
			ObjectID: objectID,
			Status:   StatusError,
			Message:  "An error occurred while creating the object.",
			Error:    errorDetail(body),
			HasError: true,
		}, nil
	}
}
