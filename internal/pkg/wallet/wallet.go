package wallet

import (
	"bytes"
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/golang-jwt/jwt/v4"
	"github.com/oskargbc/dws-wallet-service/configs"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2jwt "golang.org/x/oauth2/jwt"
)

const walletScope = "https://www.googleapis.com/auth/wallet_object.issuer"

var (
	walletInstance *Service
	walletOnce     sync.Once
)

// Service talks to the Google Wallet API for event ticket passes. It is
// read-only after construction and safe for concurrent use.
type Service struct {
	saCfg      *oauth2jwt.Config
	signKey    *rsa.PrivateKey
	httpClient *http.Client
	baseURL    string
	saveURL    string
	origins    []string
}

func GetWalletServiceInstance(cfg *configs.Config) (*Service, error) {
	var err error
	walletOnce.Do(func() {
		keyData, readErr := os.ReadFile(cfg.Wallet.KeyFile)
		if readErr != nil {
			err = fmt.Errorf("failed to read service account key: %w", readErr)
			log.WithError(readErr).WithField("key_file", cfg.Wallet.KeyFile).Error("Service account key load failed")
			return
		}

		saCfg, parseErr := google.JWTConfigFromJSON(keyData, walletScope)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse service account key: %w", parseErr)
			log.WithError(parseErr).Error("Service account key parse failed")
			return
		}

		signKey, keyErr := jwt.ParseRSAPrivateKeyFromPEM(saCfg.PrivateKey)
		if keyErr != nil {
			err = fmt.Errorf("failed to parse service account private key: %w", keyErr)
			log.WithError(keyErr).Error("Service account private key parse failed")
			return
		}

		client := oauth2.NewClient(context.Background(), saCfg.TokenSource(context.Background()))
		client.Timeout = cfg.Wallet.Timeout

		log.WithField("service_account", saCfg.Email).Info("Wallet API client initialized")
		walletInstance = &Service{
			saCfg:      saCfg,
			signKey:    signKey,
			httpClient: client,
			baseURL:    strings.TrimSuffix(cfg.Wallet.BaseURL, "/"),
			saveURL:    cfg.Wallet.SaveURL,
			origins:    cfg.Wallet.Origins,
		}
	})

	if err != nil {
		return nil, err
	}

	if walletInstance == nil {
		return nil, fmt.Errorf("wallet service instance is nil")
	}

	return walletInstance, nil
}

// HealthCheck mints a fresh access token to verify the service account
// credentials are still accepted by the token endpoint.
func (s *Service) HealthCheck(ctx context.Context) error {
	if s.saCfg == nil {
		return fmt.Errorf("wallet credentials are not loaded")
	}

	if _, err := s.saCfg.TokenSource(ctx).Token(); err != nil {
		return fmt.Errorf("wallet token request failed: %w", err)
	}
	return nil
}

// do issues one authenticated API request and hands back the status code
// and raw body. Transport-level failures are the only errors returned;
// non-2xx statuses are the caller's to interpret.
func (s *Service) do(ctx context.Context, method, url string, payload any) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return resp.StatusCode, data, nil
}

// errorDetail extracts the vendor's error description from a non-2xx body
// for inclusion in a result envelope.
func errorDetail(body []byte) any {
	var decoded struct {
		Error any `json:"error"`
	}
	if err := json.Unmarshal(body, &decoded); err == nil && decoded.Error != nil {
		return decoded.Error
	}
	if len(body) == 0 {
		return nil
	}
	return string(body)
}

// responseEcho decodes a successful insert response so the envelope can
// carry it back to the caller as-is.
func responseEcho(body []byte) any {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return string(body)
	}
	return decoded
}
