package google

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate_a/single", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "gtx", q.Get("client"))
		assert.Equal(t, "he", q.Get("sl"))
		assert.Equal(t, "en", q.Get("tl"))
		assert.Equal(t, "t", q.Get("dt"))
		assert.Equal(t, "שלום עולם", q.Get("q"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Write([]byte(`[[["Hello ","שלום ",null,null,10],["world","עולם",null,null,10]],null,"he"]`))
	}))
	defer srv.Close()

	c := New("he", "en")
	c.BaseURL = srv.URL
	out, err := c.Translate(context.Background(), "שלום עולם")
	require.NoError(t, err)
	assert.Equal(t, "Hello world", out)
}

func TestTranslateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := New("auto", "en")
	c.BaseURL = srv.URL
	_, err := c.Translate(context.Background(), "שלום")
	assert.Error(t, err)
}

func TestParseResponse(t *testing.T) {
	out, err := parseResponse([]byte(`[[["Hola","Hello",null,null,1]],null,"en"]`))
	require.NoError(t, err)
	assert.Equal(t, "Hola", out)
}

func TestParseResponseMultipleSentences(t *testing.T) {
	out, err := parseResponse([]byte(`[[["One. ","Uno. "],["Two.","Dos."]],null,"es"]`))
	require.NoError(t, err)
	assert.Equal(t, "One. Two.", out)
}

func TestParseResponseRejectsGarbage(t *testing.T) {
	_, err := parseResponse([]byte(`not json`))
	assert.Error(t, err)

	_, err = parseResponse([]byte(`[]`))
	assert.Error(t, err)

	_, err = parseResponse([]byte(`["flat string"]`))
	assert.Error(t, err)

	_, err = parseResponse([]byte(`[[]]`))
	assert.Error(t, err)
}
