package oai

import (
	"context"
	"fmt"

	"github.com/casualjim/oai/param"
	"github.com/tidwall/gjson"
)

// VectorStoresService talks to the vector store endpoints.
type VectorStoresService struct {
	client *Client
}

// VectorStores returns the vector stores service.
func (c *Client) VectorStores() VectorStoresService {
	return VectorStoresService{client: c}
}

// VectorStoreRequest carries the parameters for creating or modifying a
// vector store. Every field is optional.
type VectorStoreRequest struct {
	fileIDs          param.Opt[[]string]
	name             param.Opt[string]
	expiresAfter     param.Opt[any]
	chunkingStrategy param.Opt[any]
	metadata         param.Opt[any]
}

// NewVectorStore starts a vector store request.
func NewVectorStore() VectorStoreRequest {
	return VectorStoreRequest{}
}

// WithFileIDs sets the files to index into the store.
func (r VectorStoreRequest) WithFileIDs(fileIDs []string) VectorStoreRequest {
	r.fileIDs = param.Some(fileIDs)
	return r
}

// WithName names the vector store.
func (r VectorStoreRequest) WithName(name string) VectorStoreRequest {
	r.name = param.Some(name)
	return r
}

// WithExpiresAfter sets the store's expiration policy.
func (r VectorStoreRequest) WithExpiresAfter(policy any) VectorStoreRequest {
	r.expiresAfter = param.Some(policy)
	return r
}

// WithChunkingStrategy sets how files are chunked before indexing.
func (r VectorStoreRequest) WithChunkingStrategy(strategy any) VectorStoreRequest {
	r.chunkingStrategy = param.Some(strategy)
	return r
}

// WithMetadata attaches caller-defined metadata.
func (r VectorStoreRequest) WithMetadata(metadata any) VectorStoreRequest {
	r.metadata = param.Some(metadata)
	return r
}

func (r VectorStoreRequest) MarshalJSON() ([]byte, error) {
	obj := param.NewObject()
	param.SetOpt(obj, "file_ids", r.fileIDs)
	param.SetOpt(obj, "name", r.name)
	param.SetOpt(obj, "expires_after", r.expiresAfter)
	param.SetOpt(obj, "chunking_strategy", r.chunkingStrategy)
	param.SetOpt(obj, "metadata", r.metadata)
	return obj.MarshalJSON()
}

// Create creates a vector store.
func (s VectorStoresService) Create(ctx context.Context, req VectorStoreRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, "/vector_stores", req)
}

// List lists vector stores.
func (s VectorStoresService) List(ctx context.Context, q ListQuery) (gjson.Result, error) {
	return s.client.Get(ctx, "/vector_stores"+q.encode())
}

// Retrieve fetches a vector store by ID.
func (s VectorStoresService) Retrieve(ctx context.Context, vectorStoreID string) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/vector_stores/%s", vectorStoreID))
}

// Modify updates a vector store's name, expiration policy, and metadata.
// Indexed files and the chunking strategy are fixed at creation and ignored
// here.
func (s VectorStoresService) Modify(ctx context.Context, vectorStoreID string, req VectorStoreRequest) (gjson.Result, error) {
	body := param.NewObject()
	param.SetOpt(body, "name", req.name)
	param.SetOpt(body, "expires_after", req.expiresAfter)
	param.SetOpt(body, "metadata", req.metadata)
	return s.client.PostJSON(ctx, fmt.Sprintf("/vector_stores/%s", vectorStoreID), body)
}

// Delete deletes a vector store.
func (s VectorStoresService) Delete(ctx context.Context, vectorStoreID string) (gjson.Result, error) {
	return s.client.Delete(ctx, fmt.Sprintf("/vector_stores/%s", vectorStoreID))
}
