package oai

import (
	"context"
	"fmt"

	"github.com/casualjim/oai/param"
	"github.com/tidwall/gjson"
)

// ProjectsService talks to the organization project-management endpoints.
type ProjectsService struct {
	client *Client
}

// Projects returns the projects service.
func (c *Client) Projects() ProjectsService {
	return ProjectsService{client: c}
}

// ProjectRequest carries the parameters for creating or modifying a project.
// The name is mandatory.
type ProjectRequest struct {
	name            string
	appUseCase      param.Opt[string]
	businessWebsite param.Opt[string]
}

// NewProject starts a project request with the given friendly name.
func NewProject(name string) ProjectRequest {
	return ProjectRequest{name: name}
}

// WithAppUseCase describes the business, project, or use case.
func (r ProjectRequest) WithAppUseCase(useCase string) ProjectRequest {
	r.appUseCase = param.Some(useCase)
	return r
}

// WithBusinessWebsite sets a business URL or social media link.
func (r ProjectRequest) WithBusinessWebsite(website string) ProjectRequest {
	r.businessWebsite = param.Some(website)
	return r
}

func (r ProjectRequest) MarshalJSON() ([]byte, error) {
	obj := param.NewObject().Set("name", r.name)
	param.SetOpt(obj, "app_use_case", r.appUseCase)
	param.SetOpt(obj, "business_website", r.businessWebsite)
	return obj.MarshalJSON()
}

// List lists the organization's projects.
func (s ProjectsService) List(ctx context.Context, limit param.Opt[int], after param.Opt[string], includeArchived param.Opt[bool]) (gjson.Result, error) {
	q := newQuery()
	addOpt(q, "limit", limit)
	addOpt(q, "after", after)
	addOpt(q, "include_archived", includeArchived)
	return s.client.Get(ctx, "/organization/projects"+q.String())
}

// Create creates a project.
func (s ProjectsService) Create(ctx context.Context, req ProjectRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, "/organization/projects", req)
}

// Retrieve fetches a project by ID.
func (s ProjectsService) Retrieve(ctx context.Context, projectID string) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/organization/projects/%s", projectID))
}

// Modify updates a project.
func (s ProjectsService) Modify(ctx context.Context, projectID string, req ProjectRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, fmt.Sprintf("/organization/projects/%s", projectID), req)
}

// Archive archives a project. Archived projects cannot be used or updated.
func (s ProjectsService) Archive(ctx context.Context, projectID string) (gjson.Result, error) {
	return s.client.PostJSON(ctx, fmt.Sprintf("/organization/projects/%s/archive", projectID), param.NewObject())
}

// ListUsers lists the users of a project.
func (s ProjectsService) ListUsers(ctx context.Context, projectID string, limit param.Opt[int], after param.Opt[string]) (gjson.Result, error) {
	q := newQuery()
	addOpt(q, "limit", limit)
	addOpt(q, "after", after)
	return s.client.Get(ctx, fmt.Sprintf("/organization/projects/%s/users", projectID)+q.String())
}

// CreateUser adds a user to a project with the given role, "owner" or
// "member".
func (s ProjectsService) CreateUser(ctx context.Context, projectID, userID, role string) (gjson.Result, error) {
	body := param.NewObject().
		Set("user_id", userID).
		Set("role", role)
	return s.client.PostJSON(ctx, fmt.Sprintf("/organization/projects/%s/users", projectID), body)
}

// RetrieveUser fetches a project user.
func (s ProjectsService) RetrieveUser(ctx context.Context, projectID, userID string) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/organization/projects/%s/users/%s", projectID, userID))
}

// ModifyUser changes a project user's role.
func (s ProjectsService) ModifyUser(ctx context.Context, projectID, userID, role string) (gjson.Result, error) {
	body := param.NewObject().Set("role", role)
	return s.client.PostJSON(ctx, fmt.Sprintf("/organization/projects/%s/users/%s", projectID, userID), body)
}

// DeleteUser removes a user from a project.
func (s ProjectsService) DeleteUser(ctx context.Context, projectID, userID string) (gjson.Result, error) {
	return s.client.Delete(ctx, fmt.Sprintf("/organization/projects/%s/users/%s", projectID, userID))
}
