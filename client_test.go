package oai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	c := New("sk-test")

	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Same(t, http.DefaultClient, c.http)
}

func TestGetAttachesBearerCredential(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"object":"list","data":[]}`))
	}))
	defer srv.Close()

	c := New("sk-test", WithBaseURL(srv.URL))
	resp, err := c.Get(context.Background(), "/models")
	require.NoError(t, err)

	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "list", resp.Get("object").String())
}

func TestPostJSONHeadersAndBody(t *testing.T) {
	var (
		gotContentType string
		gotMethod      string
		gotBody        map[string]any
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"id":"resp-1"}`))
	}))
	defer srv.Close()

	c := New("sk-test", WithBaseURL(srv.URL))
	resp, err := c.PostJSON(context.Background(), "/moderations", map[string]any{"input": "hello"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, map[string]any{"input": "hello"}, gotBody)
	assert.Equal(t, "resp-1", resp.Get("id").String())
}

func TestDeleteMethod(t *testing.T) {
	var gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		w.Write([]byte(`{"deleted":true}`))
	}))
	defer srv.Close()

	c := New("sk-test", WithBaseURL(srv.URL))
	resp, err := c.Delete(context.Background(), "/assistants/asst_1")
	require.NoError(t, err)

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.True(t, resp.Get("deleted").Bool())
}

func TestUnreachableHostIsTransportError(t *testing.T) {
	c := New("sk-test", WithBaseURL("http://127.0.0.1:1"))

	_, err := c.PostJSON(context.Background(), "/chat/completions", map[string]any{"model": "gpt-x"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrTransport, apiErr.Kind)
}

func TestMalformedResponseIsEncodingError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>definitely not json</html>`))
	}))
	defer srv.Close()

	c := New("sk-test", WithBaseURL(srv.URL))
	_, err := c.Get(context.Background(), "/models")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrEncoding, apiErr.Kind)
}

func TestUnserializableBodyIsEncodingError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be sent when the body cannot be serialized")
	}))
	defer srv.Close()

	c := New("sk-test", WithBaseURL(srv.URL))
	_, err := c.PostJSON(context.Background(), "/embeddings", make(chan int))
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrEncoding, apiErr.Kind)
}

func TestErrorStatusWithValidJSONIsSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid model","type":"invalid_request_error"}}`))
	}))
	defer srv.Close()

	c := New("sk-test", WithBaseURL(srv.URL))
	resp, err := c.Get(context.Background(), "/models")
	require.NoError(t, err, "a valid JSON body is a success regardless of status")

	assert.Equal(t, "invalid model", resp.Get("error.message").String())
}

func TestSetBaseURLBetweenCalls(t *testing.T) {
	var hitsA, hitsB int
	srvA := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitsA++
		w.Write([]byte(`{"server":"a"}`))
	}))
	defer srvA.Close()
	srvB := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hitsB++
		w.Write([]byte(`{"server":"b"}`))
	}))
	defer srvB.Close()

	c := New("sk-test", WithBaseURL(srvA.URL))

	first, err := c.Get(context.Background(), "/models")
	require.NoError(t, err)
	assert.Equal(t, "a", first.Get("server").String())

	c.SetBaseURL(srvB.URL)
	assert.Equal(t, srvB.URL, c.BaseURL())

	second, err := c.Get(context.Background(), "/models")
	require.NoError(t, err)
	assert.Equal(t, "b", second.Get("server").String())

	assert.Equal(t, 1, hitsA)
	assert.Equal(t, 1, hitsB)
}

func TestTrailingSlashBaseURL(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New("sk-test", WithBaseURL(srv.URL+"/"))
	_, err := c.Get(context.Background(), "/models")
	require.NoError(t, err)

	assert.Equal(t, "/models", gotPath)
}

func TestContextCancellationSurfacesAsTransport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := New("sk-test", WithBaseURL(srv.URL))
	_, err := c.Get(ctx, "/models")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, ErrTransport, apiErr.Kind)
	assert.True(t, errors.Is(err, context.Canceled))
}
