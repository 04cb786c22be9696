package storeclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(Config{BaseURL: server.URL + "/", APIKey: "test"})
}

func TestGetStore(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stores/boulder-1", r.URL.Path)
		assert.Equal(t, "test", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{"id":"boulder-1","latitude":40.0176,"systemCapacity":4,"solar_credits":"42.7"}`))
	})

	store, err := client.GetStore(context.Background(), "boulder-1")
	require.NoError(t, err)

	assert.Equal(t, "boulder-1", store.ID)
	require.NotNil(t, store.Latitude)
	assert.Equal(t, 40.0176, *store.Latitude)
	assert.Nil(t, store.Longitude)
	assert.Equal(t, "42.7", store.SolarCredits)
}

func TestGetStoreNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"code":404,"text":"resource not found"}`))
	})

	_, err := client.GetStore(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetStoreNullBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	_, err := client.GetStore(context.Background(), "s1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetStoreServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetStore(context.Background(), "s1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestGetStoreMalformedBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":`))
	})

	_, err := client.GetStore(context.Background(), "s1")
	assert.Error(t, err)
}

func TestGetStoreEscapesID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/stores/a%2Fb", r.URL.EscapedPath())
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetStore(context.Background(), "a/b")
	assert.ErrorIs(t, err, ErrNotFound)
}
