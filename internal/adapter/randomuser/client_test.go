package randomuser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obruchev/user_intake_service/internal/core/domain"
)

const samplePayload = `{
	"results": [
		{
			"name": {"first": "Ana", "last": "Lopez"},
			"email": "ana.lopez@example.com",
			"dob": {"date": "1990-05-12T08:15:30.000Z"},
			"location": {
				"street": {"number": 123, "name": "Calle Mayor"},
				"city": "Madrid",
				"state": "Madrid",
				"country": "Spain"
			},
			"login": {"password": "secret1"}
		}
	]
}`

type nopLogger struct{}

func (nopLogger) Info(string, map[string]interface{}) {}
func (nopLogger) Error(string, map[string]interface{}) {}
func (nopLogger) Debug(string, map[string]interface{}) {}
func (nopLogger) Warn(string, map[string]interface{}) {}

func TestFetchMapsProviderPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(samplePayload))
	}))
	defer server.Close()

	client := NewClient(server.URL, nopLogger{})
	record, err := client.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Ana Lopez", record.Name)
	assert.Equal(t, "ana.lopez@example.com", record.Email)
	assert.Equal(t, "1990-05-12", record.BirthDate)
	assert.Equal(t, "123 Calle Mayor, Madrid, Madrid, Spain", record.Address)
	assert.Equal(t, "secret1", record.Password)
	assert.False(t, record.Persisted())
}

func TestFetchFailsOnNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, nopLogger{})
	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetchFailsOnEmptyResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results": []}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nopLogger{})
	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}

func TestFetchFailsOnUnreachableProvider(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, nopLogger{})
	_, err := client.Fetch(context.Background())
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}
