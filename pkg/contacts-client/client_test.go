package contactsclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/case-framework/contact-manager/pkg/apihelpers"
	"github.com/case-framework/contact-manager/pkg/contacts"
	"github.com/case-framework/contact-manager/pkg/contacts/contactstest"
	"github.com/case-framework/contact-manager/pkg/contacts/types"
	"github.com/case-framework/contact-manager/services/contacts-api/apihandlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)

	service := contacts.NewContactService(contactstest.NewMemoryStore(), contacts.DEFAULT_MAX_PAGE_SIZE)
	router := apihandlers.NewRouter(apihandlers.NewHTTPHandler(service), "/api", nil)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	client, err := NewClient(ClientConfig{RootURL: server.URL + "/api/"})
	require.NoError(t, err)
	return client
}

func payload(first, email, phone string) types.ContactPayload {
	return types.ContactPayload{FirstName: first, LastName: "Doe", Email: email, PhoneNumber: phone}
}

func requireAPIError(t *testing.T, err error, status int, msg string) {
	t.Helper()
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr), "expected *APIError, got %v", err)
	assert.Equal(t, status, apiErr.StatusCode)
	assert.Equal(t, msg, apiErr.Message)
}

func TestNewClient(t *testing.T) {
	_, err := NewClient(ClientConfig{})
	assert.Error(t, err)

	_, err = NewClient(ClientConfig{
		RootURL: "http://localhost:5000/api",
		MTLSCertificatePaths: &apihelpers.CertificatePaths{
			ServerCertPath: "missing.crt",
			ServerKeyPath:  "missing.key",
			CACertPath:     "missing-ca.crt",
		},
	})
	assert.Error(t, err)
}

func TestHealth(t *testing.T) {
	client := newTestClient(t)
	assert.NoError(t, client.Health(context.Background()))
}

func TestContactLifecycle(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	created, err := client.Create(ctx, payload("Ann", "ann@example.com", "1234567890"))
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.Equal(t, "ann@example.com", created.Email)

	_, err = client.Create(ctx, payload("Bob", "ann@example.com", "9999999999"))
	requireAPIError(t, err, http.StatusBadRequest, "email already exists")

	_, err = client.Create(ctx, payload("Bob", "bob@example.com", "12345"))
	requireAPIError(t, err, http.StatusBadRequest, contacts.MSG_INVALID_PHONE)

	update := payload("Ann", "ann@example.com", "1234567890")
	update.JobTitle = "Engineer"
	updated, err := client.Update(ctx, created.ID.Hex(), update)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Engineer", updated.JobTitle)

	page, err := client.List(ctx, types.DefaultListQuery())
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalCount)
	require.Len(t, page.Contacts, 1)
	assert.Equal(t, "Engineer", page.Contacts[0].JobTitle)

	deleted, err := client.Delete(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	_, err = client.Delete(ctx, created.ID.Hex())
	requireAPIError(t, err, http.StatusNotFound, "Contact not found")
}

func TestListErrors(t *testing.T) {
	ctx := context.Background()
	client := newTestClient(t)

	_, err := client.List(ctx, types.ListQuery{Page: 2, Limit: 10})
	requireAPIError(t, err, http.StatusBadRequest, "Invalid page: 2 (total pages: 0)")

	_, err = client.List(ctx, types.ListQuery{Page: 1, Limit: 10, SortBy: "secret"})
	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestRouteErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"Not Found"}}`))
	}))
	defer server.Close()

	client, err := NewClient(ClientConfig{RootURL: server.URL})
	require.NoError(t, err)

	err = client.Health(context.Background())
	requireAPIError(t, err, http.StatusNotFound, "Not Found")
}
