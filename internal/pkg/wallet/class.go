package wallet

import (
	"context"
	"fmt"
	"net/http"

	"github.com/oskargbc/dws-wallet-service/internal/ticket"
)

// CreateClass ensures the event ticket class issuerID.classSuffix exists,
// creating it from the ticket fields when it does not. Expected API
// outcomes come back as a ClassResult; transport failures and a rejected
// insert are Go errors.
func (s *Service) CreateClass(ctx context.Context, issuerID, classSuffix string, fields ticket.Fields) (*ClassResult, error) {
	classID := fmt.Sprintf("%s.%s", issuerID, classSuffix)

	status, body, err := s.do(ctx, http.MethodGet, s.baseURL+"/eventTicketClass/"+classID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check class %s: %w", classID, err)
	}

	switch {
	case status == http.StatusBadRequest:
		return &ClassResult{
			Status:   StatusInvalidRequest,
			Message:  "Invalid resource ID.",
			Error:    errorDetail(body),
			HasError: true,
		}, nil
	case status >= 200 && status < 300:
		return &ClassResult{
			Status:      StatusExists,
			Message:     "The class already exists.",
			IssuerID:    issuerID,
			ClassSuffix: classSuffix,
			ClassID:     classID,
			HasError:    true,
		}, nil
	case status != http.StatusNotFound:
		return &ClassResult{
			Status:   StatusError,
			Message:  "An unexpected error occurred while checking class existence. Please try again later.",
			HasError: true,
		}, nil
	}

	payload := newClassPayload(classID, fields)

	status, body, err = s.do(ctx, http.MethodPost, s.baseURL+"/eventTicketClass", payload)
	if err != nil {
		return nil, fmt.Errorf("failed to insert class %s: %w", classID, err)
	}
	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("class insert for %s returned status %d: %v", classID, status, errorDetail(body))
	}

	return &ClassResult{
		Status:      StatusCreated,
		Message:     "Class successfully created.",
		IssuerID:    issuerID,
		ClassSuffix: classSuffix,
		ClassID:     classID,
		Response:    responseEcho(body),
		HasError:    false,
	}, nil
}
