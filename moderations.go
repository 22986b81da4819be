package oai

import (
	"context"

	"github.com/casualjim/oai/param"
	"github.com/tidwall/gjson"
)

// ModerationsService talks to the moderation endpoint.
type ModerationsService struct {
	client *Client
}

// Moderations returns the moderations service.
func (c *Client) Moderations() ModerationsService {
	return ModerationsService{client: c}
}

// ModerationRequest carries the text to classify. Input is mandatory.
type ModerationRequest struct {
	input string
	model param.Opt[string]
}

// NewModeration starts a moderation request for the given input text.
func NewModeration(input string) ModerationRequest {
	return ModerationRequest{input: input}
}

// WithModel picks a specific moderation model.
func (r ModerationRequest) WithModel(model string) ModerationRequest {
	r.model = param.Some(model)
	return r
}

func (r ModerationRequest) MarshalJSON() ([]byte, error) {
	obj := param.NewObject().Set("input", r.input)
	param.SetOpt(obj, "model", r.model)
	return obj.MarshalJSON()
}

// Create classifies the input text.
func (s ModerationsService) Create(ctx context.Context, req ModerationRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, "/moderations", req)
}
