package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikiyas/txboard/internal/signing"
)

const testSecret = "unit-test-secret"

func newTestClient(t *testing.T, upstream *httptest.Server) *HTTPClient {
	t.Helper()
	client, err := NewHTTPClient(Options{
		BaseURL:   upstream.URL,
		APIKey:    "key-123",
		APISecret: testSecret,
	})
	require.NoError(t, err)
	return client
}

func TestFindByUserSignsPathWithoutQuery(t *testing.T) {
	var captured *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Clone(context.Background())
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	reply, err := client.FindByUser(context.Background(), "3")
	require.NoError(t, err)
	require.True(t, reply.OK())

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodGet, captured.Method)
	assert.Equal(t, "/api/en/transaction/find-by-user", captured.URL.Path)
	assert.Equal(t, "3", captured.URL.Query().Get("page"))
	assert.Equal(t, "key-123", captured.Header.Get("YAYA-API-KEY"))

	// The signature must cover the path only, never the query string.
	timestamp := captured.Header.Get("YAYA-API-TIMESTAMP")
	require.NotEmpty(t, timestamp)
	want := signing.Sign([]byte(testSecret), timestamp, "GET", "/api/en/transaction/find-by-user", "")
	assert.Equal(t, want, captured.Header.Get("YAYA-API-SIGN"))
}

func TestSearchSignsSerializedBody(t *testing.T) {
	var captured *http.Request
	var capturedBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedBody, _ = io.ReadAll(r.Body)
		captured = r.Clone(context.Background())
		w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	reply, err := client.Search(context.Background(), "alice")
	require.NoError(t, err)
	require.True(t, reply.OK())

	require.NotNil(t, captured)
	assert.Equal(t, http.MethodPost, captured.Method)
	assert.Equal(t, "/api/en/transaction/search", captured.URL.Path)
	assert.JSONEq(t, `{"query":"alice"}`, string(capturedBody))

	// The signed preimage includes the exact bytes that went over the wire.
	timestamp := captured.Header.Get("YAYA-API-TIMESTAMP")
	require.NotEmpty(t, timestamp)
	want := signing.Sign([]byte(testSecret), timestamp, "POST", "/api/en/transaction/search", string(capturedBody))
	assert.Equal(t, want, captured.Header.Get("YAYA-API-SIGN"))
}

func TestReplyCarriesUpstreamStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("forbidden"))
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	reply, err := client.FindByUser(context.Background(), "1")
	require.NoError(t, err)

	assert.False(t, reply.OK())
	assert.Equal(t, http.StatusForbidden, reply.StatusCode)
	assert.Equal(t, "forbidden", string(reply.Body))
}

func TestTransportFailureSurfacesAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	client := newTestClient(t, srv)
	_, err := client.FindByUser(context.Background(), "1")
	assert.Error(t, err)
}

func TestNewHTTPClientRequiresBaseURL(t *testing.T) {
	_, err := NewHTTPClient(Options{APIKey: "k", APISecret: "s"})
	assert.ErrorIs(t, err, ErrMissingBaseURL)
}

func TestPing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized) // any response means reachable
	}))
	defer srv.Close()

	client := newTestClient(t, srv)
	assert.NoError(t, client.Ping(context.Background()))

	srv.Close()
	assert.Error(t, client.Ping(context.Background()))
}
