package oai

import (
	"context"
	"net/http"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/casualjim/oai/param"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectSerialization(t *testing.T) {
	req := NewProject("research").WithAppUseCase("internal tooling")

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"research","app_use_case":"internal tooling"}`, string(data))
}

func TestProjectListQueryParameters(t *testing.T) {
	srv, captured, _ := newRecordingServer(t, `{"object":"list","data":[]}`)

	c := New("sk-test", WithBaseURL(srv.URL))
	_, err := c.Projects().List(context.Background(), param.Some(50), param.None[string](), param.Some(true))
	require.NoError(t, err)

	assert.Equal(t, "/organization/projects", captured.URL.Path)
	assert.Equal(t, "limit=50&include_archived=true", captured.URL.RawQuery)
}

func TestProjectUserOperations(t *testing.T) {
	srv, captured, body := newRecordingServer(t, `{"id":"user_1"}`)

	c := New("sk-test", WithBaseURL(srv.URL))

	_, err := c.Projects().CreateUser(context.Background(), "proj_1", "user_1", "member")
	require.NoError(t, err)
	assert.Equal(t, "/organization/projects/proj_1/users", captured.URL.Path)
	assert.Equal(t, map[string]any{"user_id": "user_1", "role": "member"}, *body)

	_, err = c.Projects().ModifyUser(context.Background(), "proj_1", "user_1", "owner")
	require.NoError(t, err)
	assert.Equal(t, "/organization/projects/proj_1/users/user_1", captured.URL.Path)
	assert.Equal(t, map[string]any{"role": "owner"}, *body)

	_, err = c.Projects().DeleteUser(context.Background(), "proj_1", "user_1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, captured.Method)
}

func TestProjectArchivePostsEmptyObject(t *testing.T) {
	srv, captured, body := newRecordingServer(t, `{"id":"proj_1","status":"archived"}`)

	c := New("sk-test", WithBaseURL(srv.URL))
	_, err := c.Projects().Archive(context.Background(), "proj_1")
	require.NoError(t, err)

	assert.Equal(t, "/organization/projects/proj_1/archive", captured.URL.Path)
	assert.Empty(t, *body)
}
