package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"nexx/pkg/apiclient"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetDecodesJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/products", r.URL.Path)
		json.NewEncoder(w).Encode([]map[string]string{{"id": "p1"}})
	}))
	defer server.Close()

	client := apiclient.New(server.URL)

	var got []map[string]string
	require.NoError(t, client.Get(context.Background(), "/products", &got))
	assert.Len(t, got, 1)
	assert.Equal(t, "p1", got[0]["id"])
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte("{}"))
	}))
	defer server.Close()

	client := apiclient.New(server.URL)

	require.NoError(t, client.Get(context.Background(), "/", nil))
	assert.Empty(t, gotAuth, "no header before a token is set")

	client.SetToken("secret-token")
	require.NoError(t, client.Get(context.Background(), "/", nil))
	assert.Equal(t, "Bearer secret-token", gotAuth)

	client.ClearToken()
	require.NoError(t, client.Get(context.Background(), "/", nil))
	assert.Empty(t, gotAuth, "header dropped after the token is cleared")
}

func TestClient_ErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Product not found"})
	}))
	defer server.Close()

	client := apiclient.New(server.URL)

	err := client.Get(context.Background(), "/products/missing", nil)
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "Product not found", apiErr.Message)
	assert.True(t, apiErr.IsNotFound())
	assert.False(t, apiErr.IsAuthError())
}

func TestClient_NetworkError(t *testing.T) {
	client := apiclient.New("http://127.0.0.1:1")

	err := client.Get(context.Background(), "/", nil)
	require.Error(t, err)

	var apiErr *apiclient.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 0, apiErr.Status)
}

func TestClient_PostSendsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "bluxs", body["username"])
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]bool{"success": true})
	}))
	defer server.Close()

	client := apiclient.New(server.URL)

	var resp map[string]bool
	require.NoError(t, client.Post(context.Background(), "/auth/login", map[string]string{"username": "bluxs"}, &resp))
	assert.True(t, resp["success"])
}
