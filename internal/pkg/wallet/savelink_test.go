package wallet

import (
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLink(t *testing.T) {
	svc := newTestService(t, "")

	result, err := svc.SaveLink("393", "summer-fest", "ticket-42")
	require.NoError(t, err)

	assert.Equal(t, StatusSuccess, result.Status)
	assert.Equal(t, "JWT successfully generated.", result.Message)
	require.True(t, strings.HasPrefix(result.WalletLink, "https://pay.google.com/gp/v/save/"))

	tokenString := strings.TrimPrefix(result.WalletLink, "https://pay.google.com/gp/v/save/")
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		return &serviceKey(t).PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "passes@dws-wallet.iam.gserviceaccount.com", claims["iss"])
	assert.Equal(t, "google", claims["aud"])
	assert.Equal(t, "savetowallet", claims["typ"])
	assert.Equal(t, []any{"www.example.com"}, claims["origins"])
	assert.Contains(t, claims, "iat")

	payload, ok := claims["payload"].(map[string]any)
	require.True(t, ok)
	objects, ok := payload["eventTicketObjects"].([]any)
	require.True(t, ok)
	require.Len(t, objects, 1)

	ref, ok := objects[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "393.ticket-42", ref["id"])
	assert.Equal(t, "393.summer-fest", ref["classId"])
}

func TestSaveLinkWithoutKey(t *testing.T) {
	svc := &Service{}
	result, err := svc.SaveLink("393", "summer-fest", "ticket-42")
	assert.Error(t, err)
	assert.Nil(t, result)
}
