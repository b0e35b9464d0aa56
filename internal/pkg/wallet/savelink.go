package wallet

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

type objectReference struct {
	ID      string `json:"id"`
	ClassID string `json:"classId"`
}

type savePayload struct {
	EventTicketObjects []objectReference `json:"eventTicketObjects"`
}

// SaveLink signs an "Add to Google Wallet" JWT referencing the existing
// pass object and returns the save URL carrying it. No API call is made;
// the pass object must already exist for the link to work.
func (s *Service) SaveLink(issuerID, classSuffix, objectSuffix string) (*SaveLinkResult, error) {
	if s.signKey == nil {
		return nil, fmt.Errorf("wallet signing key is not loaded")
	}

	claims := jwt.MapClaims{
		"iss":     s.saCfg.Email,
		"aud":     "google",
		"origins": s.origins,
		"typ":     "savetowallet",
		"iat":     time.Now().Unix(),
		"payload": savePayload{
			EventTicketObjects: []objectReference{{
				ID:      fmt.Sprintf("%s.%s", issuerID, objectSuffix),
				ClassID: fmt.Sprintf("%s.%s", issuerID, classSuffix),
			}},
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(s.signKey)
	if err != nil {
		return nil, fmt.Errorf("failed to sign save link: %w", err)
	}

	return &SaveLinkResult{
		Status:     StatusSuccess,
		Message:    "JWT successfully generated.",
		WalletLink: s.saveURL + token,
	}, nil
}
