package bing

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "3.0", q.Get("api-version"))
		assert.Equal(t, "en", q.Get("to"))
		assert.Equal(t, "he", q.Get("from"))
		assert.Equal(t, "secret", r.Header.Get("Ocp-Apim-Subscription-Key"))

		var body []map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Len(t, body, 1)
		assert.Equal(t, "שלום", body[0]["Text"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"translations":[{"text":"Hello","to":"en"}]}]`))
	}))
	defer srv.Close()

	c := New("secret", "he", "en")
	c.BaseURL = srv.URL
	out, err := c.Translate(context.Background(), "שלום")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out)
}

func TestTranslateAutoOmitsFrom(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present := r.URL.Query()["from"]
		assert.False(t, present, "auto detection must not send a from parameter")
		assert.Empty(t, r.Header.Get("Ocp-Apim-Subscription-Key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"translations":[{"text":"Hello","to":"en"}]}]`))
	}))
	defer srv.Close()

	c := New("", "auto", "en")
	c.BaseURL = srv.URL
	out, err := c.Translate(context.Background(), "שלום")
	require.NoError(t, err)
	assert.Equal(t, "Hello", out)
}

func TestTranslateRejectsEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := New("secret", "he", "en")
	c.BaseURL = srv.URL
	_, err := c.Translate(context.Background(), "שלום")
	assert.Error(t, err)
}

func TestTranslateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":401000,"message":"The request is not authorized."}}`))
	}))
	defer srv.Close()

	c := New("", "he", "en")
	c.BaseURL = srv.URL
	_, err := c.Translate(context.Background(), "שלום")
	assert.Error(t, err)
}
