package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"wallet-transaction-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// IdentityProviderConfig configures the OIDC identity provider connection.
type IdentityProviderConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	Realm        string        `mapstructure:"realm"`
	ClientID     string        `mapstructure:"client_id"`
	ClientSecret string        `mapstructure:"client_secret"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// IdentityProviderClient implements ports.IdentityClient against a
// Keycloak-compatible provider: account provisioning through the admin API,
// token issuance through the password and refresh grants.
type IdentityProviderClient struct {
	cfg        IdentityProviderConfig
	httpClient *http.Client
	log        zerolog.Logger

	mu          sync.Mutex
	adminToken  string
	adminExpiry time.Time
}

// NewIdentityProviderClient creates a new IdentityProviderClient.
func NewIdentityProviderClient(cfg IdentityProviderConfig, log zerolog.Logger) *IdentityProviderClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &IdentityProviderClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	TokenType    string `json:"token_type"`
}

// CreateUser provisions an account with the person uid attached, so issued
// tokens carry it as the subject's user id.
func (c *IdentityProviderClient) CreateUser(ctx context.Context, email, password string, personUid uuid.UUID) error {
	token, err := c.getAdminToken(ctx)
	if err != nil {
		return fmt.Errorf("admin token: %w", err)
	}

	payload := map[string]any{
		"username": email,
		"email":    email,
		"enabled":  true,
		"credentials": []map[string]any{{
			"type":      "password",
			"value":     password,
			"temporary": false,
		}},
		"attributes": map[string]any{
			"user_uid": []string{personUid.String()},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	endpoint := fmt.Sprintf("%s/admin/realms/%s/users", c.cfg.BaseURL, c.cfg.Realm)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(body)))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	switch resp.StatusCode {
	case http.StatusCreated, http.StatusNoContent:
		return nil
	case http.StatusConflict:
		return fmt.Errorf("create user: email already registered")
	default:
		return fmt.Errorf("create user: unexpected status %d: %s", resp.StatusCode, readBody(resp.Body))
	}
}

// Login exchanges credentials for a token pair via the password grant.
func (c *IdentityProviderClient) Login(ctx context.Context, email, password string) (*domain.TokenPair, error) {
	form := url.Values{
		"grant_type": {"password"},
		"username":   {email},
		"password":   {password},
	}
	return c.requestTokens(ctx, form)
}

// Refresh exchanges a refresh token for a fresh pair.
func (c *IdentityProviderClient) Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error) {
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	return c.requestTokens(ctx, form)
}

func (c *IdentityProviderClient) requestTokens(ctx context.Context, form url.Values) (*domain.TokenPair, error) {
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)

	tok, err := c.tokenGrant(ctx, form)
	if err != nil {
		return nil, err
	}
	return &domain.TokenPair{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		ExpiresIn:    tok.ExpiresIn,
		TokenType:    tok.TokenType,
	}, nil
}

// getAdminToken returns a cached client-credentials token for the admin API,
// refreshing it shortly before expiry.
func (c *IdentityProviderClient) getAdminToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.adminToken != "" && time.Now().Before(c.adminExpiry) {
		return c.adminToken, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.cfg.ClientID},
		"client_secret": {c.cfg.ClientSecret},
	}
	tok, err := c.tokenGrant(ctx, form)
	if err != nil {
		return "", err
	}

	c.adminToken = tok.AccessToken
	// Refresh 30s early so in-flight requests never carry a stale token.
	c.adminExpiry = time.Now().Add(time.Duration(tok.ExpiresIn)*time.Second - 30*time.Second)
	return c.adminToken, nil
}

func (c *IdentityProviderClient) tokenGrant(ctx context.Context, form url.Values) (*tokenResponse, error) {
	endpoint := fmt.Sprintf("%s/realms/%s/protocol/openid-connect/token", c.cfg.BaseURL, c.cfg.Realm)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token request: unexpected status %d: %s", resp.StatusCode, readBody(resp.Body))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return nil, fmt.Errorf("token request: response carries no access token")
	}
	return &tok, nil
}
