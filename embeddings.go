package oai

import (
	"context"

	"github.com/casualjim/oai/param"
	"github.com/tidwall/gjson"
)

// EmbeddingsService talks to the embeddings endpoint.
type EmbeddingsService struct {
	client *Client
}

// Embeddings returns the embeddings service.
func (c *Client) Embeddings() EmbeddingsService {
	return EmbeddingsService{client: c}
}

// EmbeddingRequest carries the parameters for creating an embedding. Input
// and model are mandatory.
type EmbeddingRequest struct {
	input          string
	model          string
	encodingFormat param.Opt[string]
	dimensions     param.Opt[int64]
	user           param.Opt[string]
}

// NewEmbedding starts an embedding request for the given input text and
// model.
func NewEmbedding(input, model string) EmbeddingRequest {
	return EmbeddingRequest{input: input, model: model}
}

// WithEncodingFormat sets the encoding of the returned embeddings, "float"
// or "base64".
func (r EmbeddingRequest) WithEncodingFormat(format string) EmbeddingRequest {
	r.encodingFormat = param.Some(format)
	return r
}

// WithDimensions sets the number of dimensions of the output embeddings.
func (r EmbeddingRequest) WithDimensions(n int64) EmbeddingRequest {
	r.dimensions = param.Some(n)
	return r
}

// WithUser tags the request with an end-user identifier.
func (r EmbeddingRequest) WithUser(user string) EmbeddingRequest {
	r.user = param.Some(user)
	return r
}

func (r EmbeddingRequest) MarshalJSON() ([]byte, error) {
	obj := param.NewObject().
		Set("input", r.input).
		Set("model", r.model)
	param.SetOpt(obj, "encoding_format", r.encodingFormat)
	param.SetOpt(obj, "dimensions", r.dimensions)
	param.SetOpt(obj, "user", r.user)
	return obj.MarshalJSON()
}

// Create requests an embedding.
func (s EmbeddingsService) Create(ctx context.Context, req EmbeddingRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, "/embeddings", req)
}
