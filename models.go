package oai

import (
	"context"

	"github.com/tidwall/gjson"
)

// ModelsService talks to the models endpoint.
type ModelsService struct {
	client *Client
}

// Models returns the models service.
func (c *Client) Models() ModelsService {
	return ModelsService{client: c}
}

// List fetches the models available to the credential.
func (s ModelsService) List(ctx context.Context) (gjson.Result, error) {
	return s.client.Get(ctx, "/models")
}
