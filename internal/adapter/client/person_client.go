package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"wallet-transaction-engine/internal/core/domain"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// PersonServiceClient implements ports.PersonClient against the person
// service's REST API.
type PersonServiceClient struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewPersonServiceClient creates a new PersonServiceClient.
func NewPersonServiceClient(baseURL string, timeout time.Duration, log zerolog.Logger) *PersonServiceClient {
	return &PersonServiceClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

type createPersonRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type createPersonResponse struct {
	Uid uuid.UUID `json:"uid"`
}

// CreatePerson creates a profile record and returns its uid.
func (c *PersonServiceClient) CreatePerson(ctx context.Context, person domain.Person) (uuid.UUID, error) {
	body, err := json.Marshal(createPersonRequest{
		Email:     person.Email,
		FirstName: person.FirstName,
		LastName:  person.LastName,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshal person: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/persons", bytes.NewReader(body))
	if err != nil {
		return uuid.Nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create person: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return uuid.Nil, fmt.Errorf("create person: unexpected status %d: %s", resp.StatusCode, readBody(resp.Body))
	}

	var result createPersonResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return uuid.Nil, fmt.Errorf("decode person response: %w", err)
	}
	if result.Uid == uuid.Nil {
		return uuid.Nil, fmt.Errorf("create person: response carries no uid")
	}
	return result.Uid, nil
}

// DeletePerson removes a profile record, used as saga compensation.
func (c *PersonServiceClient) DeletePerson(ctx context.Context, personUid uuid.UUID) error {
	url := fmt.Sprintf("%s/api/v1/persons/%s", c.baseURL, personUid)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	// 404 counts as deleted: the compensation goal is absence.
	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		return fmt.Errorf("delete person: unexpected status %d: %s", resp.StatusCode, readBody(resp.Body))
	}
	return nil
}

func readBody(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, 512))
	return string(b)
}
