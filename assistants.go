package oai

import (
	"context"
	"fmt"

	"github.com/casualjim/oai/param"
	"github.com/tidwall/gjson"
)

// AssistantsService talks to the assistants endpoints.
type AssistantsService struct {
	client *Client
}

// Assistants returns the assistants service.
func (c *Client) Assistants() AssistantsService {
	return AssistantsService{client: c}
}

// AssistantRequest carries the parameters for creating or modifying an
// assistant. Model is mandatory on create and omitted on modify.
type AssistantRequest struct {
	model          string
	name           param.Opt[string]
	description    param.Opt[string]
	instructions   param.Opt[string]
	tools          param.Opt[[]any]
	toolResources  param.Opt[any]
	metadata       param.Opt[any]
	temperature    param.Opt[float64]
	topP           param.Opt[float64]
	responseFormat param.Opt[any]
}

// NewAssistant starts an assistant request for the given model.
func NewAssistant(model string) AssistantRequest {
	return AssistantRequest{model: model}
}

// WithName names the assistant.
func (r AssistantRequest) WithName(name string) AssistantRequest {
	r.name = param.Some(name)
	return r
}

// WithDescription describes the assistant.
func (r AssistantRequest) WithDescription(description string) AssistantRequest {
	r.description = param.Some(description)
	return r
}

// WithInstructions sets the assistant's system instructions.
func (r AssistantRequest) WithInstructions(instructions string) AssistantRequest {
	r.instructions = param.Some(instructions)
	return r
}

// WithTools sets the tools enabled on the assistant.
func (r AssistantRequest) WithTools(tools []any) AssistantRequest {
	r.tools = param.Some(tools)
	return r
}

// WithToolResources sets the resources available to the assistant's tools.
func (r AssistantRequest) WithToolResources(resources any) AssistantRequest {
	r.toolResources = param.Some(resources)
	return r
}

// WithMetadata attaches caller-defined metadata.
func (r AssistantRequest) WithMetadata(metadata any) AssistantRequest {
	r.metadata = param.Some(metadata)
	return r
}

// WithTemperature sets the sampling temperature.
func (r AssistantRequest) WithTemperature(t float64) AssistantRequest {
	r.temperature = param.Some(t)
	return r
}

// WithTopP sets the nucleus sampling parameter.
func (r AssistantRequest) WithTopP(p float64) AssistantRequest {
	r.topP = param.Some(p)
	return r
}

// WithResponseFormat constrains the assistant's output format.
func (r AssistantRequest) WithResponseFormat(format any) AssistantRequest {
	r.responseFormat = param.Some(format)
	return r
}

// optionals emits the optional fields onto obj in declaration order.
func (r AssistantRequest) optionals(obj *param.Object) *param.Object {
	param.SetOpt(obj, "name", r.name)
	param.SetOpt(obj, "description", r.description)
	param.SetOpt(obj, "instructions", r.instructions)
	param.SetOpt(obj, "tools", r.tools)
	param.SetOpt(obj, "tool_resources", r.toolResources)
	param.SetOpt(obj, "metadata", r.metadata)
	param.SetOpt(obj, "temperature", r.temperature)
	param.SetOpt(obj, "top_p", r.topP)
	param.SetOpt(obj, "response_format", r.responseFormat)
	return obj
}

func (r AssistantRequest) MarshalJSON() ([]byte, error) {
	return r.optionals(param.NewObject().Set("model", r.model)).MarshalJSON()
}

// Create creates an assistant.
func (s AssistantsService) Create(ctx context.Context, req AssistantRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, "/assistants", req)
}

// List lists assistants.
func (s AssistantsService) List(ctx context.Context, q ListQuery) (gjson.Result, error) {
	return s.client.Get(ctx, "/assistants"+q.encode())
}

// Retrieve fetches an assistant by ID.
func (s AssistantsService) Retrieve(ctx context.Context, assistantID string) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/assistants/%s", assistantID))
}

// Modify updates an assistant. Only the optional fields set on req are sent;
// the model is left unchanged.
func (s AssistantsService) Modify(ctx context.Context, assistantID string, req AssistantRequest) (gjson.Result, error) {
	body := req.optionals(param.NewObject())
	return s.client.PostJSON(ctx, fmt.Sprintf("/assistants/%s", assistantID), body)
}

// Delete deletes an assistant.
func (s AssistantsService) Delete(ctx context.Context, assistantID string) (gjson.Result, error) {
	return s.client.Delete(ctx, fmt.Sprintf("/assistants/%s", assistantID))
}
