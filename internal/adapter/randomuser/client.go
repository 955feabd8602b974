package randomuser

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/obruchev/user_intake_service/internal/core/domain"
	"github.com/obruchev/user_intake_service/internal/core/ports"
)

// Client fetches one random profile from the randomuser.me API and maps it
// into a draft record for form pre-fill. It is fire-and-forget: there is no
// retry policy, and a failed fetch leaves nothing behind.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     ports.LoggerPort
}

var _ ports.ProfileProvider = (*Client)(nil)

func NewClient(baseURL string, logger ports.LoggerPort) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
}

// response mirrors the relevant slice of the randomuser.me payload.
type response struct {
	Results []struct {
		Name struct {
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
		Email string `json:"email"`
		Dob   struct {
			Date string `json:"date"`
		} `json:"dob"`
		Location struct {
			Street struct {
				Number int    `json:"number"`
				Name   string `json:"name"`
			} `json:"street"`
			City    string `json:"city"`
			State   string `json:"state"`
			Country string `json:"country"`
		} `json:"location"`
		Login struct {
			Password string `json:"password"`
		} `json:"login"`
	} `json:"results"`
}

// Fetch performs a single GET against the provider. Any non-200 response,
// transport error, or undecodable body is domain.ErrFetchFailed.
func (c *Client) Fetch(ctx context.Context) (*domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Provider request failed", map[string]interface{}{
			"error": err.Error(),
			"url":   c.baseURL,
		})
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Provider returned non-success status", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    c.baseURL,
		})
		return nil, fmt.Errorf("%w: status %d", domain.ErrFetchFailed, resp.StatusCode)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("%w: empty results", domain.ErrFetchFailed)
	}

	return mapRecord(payload), nil
}

func mapRecord(payload response) *domain.Record {
	result := payload.Results[0]

	birthDate := result.Dob.Date
	if parsed, err := time.Parse(time.RFC3339, birthDate); err == nil {
		birthDate = parsed.Format("2006-01-02")
	} else if len(birthDate) >= 10 {
		birthDate = birthDate[:10]
	}

	address := fmt.Sprintf("%d %s, %s, %s, %s",
		result.Location.Street.Number,
		result.Location.Street.Name,
		result.Location.City,
		result.Location.State,
		result.Location.Country,
	)

	return &domain.Record{
		Name:      result.Name.First + " " + result.Name.Last,
		Email:     result.Email,
		BirthDate: birthDate,
		Address:   address,
		Password:  result.Login.Password,
	}
}
