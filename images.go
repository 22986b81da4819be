package oai

import (
	"context"

	"github.com/casualjim/oai/param"
	"github.com/tidwall/gjson"
)

// ImagesService talks to the image generation, editing, and variation
// endpoints.
type ImagesService struct {
	client *Client
}

// Images returns the images service.
func (c *Client) Images() ImagesService {
	return ImagesService{client: c}
}

// ImageGenerationRequest carries the parameters for generating an image from
// a text prompt. Prompt and model are mandatory.
type ImageGenerationRequest struct {
	prompt         string
	model          string
	size           param.Opt[string]
	responseFormat param.Opt[string]
	n              param.Opt[int64]
	user           param.Opt[string]
}

// NewImageGeneration starts an image generation request.
func NewImageGeneration(prompt, model string) ImageGenerationRequest {
	return ImageGenerationRequest{prompt: prompt, model: model}
}

// WithSize sets the size of the generated images, e.g. "1024x1024".
func (r ImageGenerationRequest) WithSize(size string) ImageGenerationRequest {
	r.size = param.Some(size)
	return r
}

// WithResponseFormat sets how generated images are returned, "url" or
// "b64_json".
func (r ImageGenerationRequest) WithResponseFormat(format string) ImageGenerationRequest {
	r.responseFormat = param.Some(format)
	return r
}

// WithN sets how many images to generate.
func (r ImageGenerationRequest) WithN(n int64) ImageGenerationRequest {
	r.n = param.Some(n)
	return r
}

// WithUser tags the request with an end-user identifier.
func (r ImageGenerationRequest) WithUser(user string) ImageGenerationRequest {
	r.user = param.Some(user)
	return r
}

func (r ImageGenerationRequest) MarshalJSON() ([]byte, error) {
	obj := param.NewObject().
		Set("prompt", r.prompt).
		Set("model", r.model)
	param.SetOpt(obj, "size", r.size)
	param.SetOpt(obj, "response_format", r.responseFormat)
	param.SetOpt(obj, "n", r.n)
	param.SetOpt(obj, "user", r.user)
	return obj.MarshalJSON()
}

// Generate creates images from a text prompt.
func (s ImagesService) Generate(ctx context.Context, req ImageGenerationRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, "/images/generations", req)
}

// ImageEditRequest carries the parameters for editing an image under a mask.
// The image and mask are local PNG files read when the request is sent.
type ImageEditRequest struct {
	model          string
	imagePath      string
	maskPath       string
	prompt         string
	size           param.Opt[string]
	responseFormat param.Opt[string]
	n              param.Opt[int64]
	user           param.Opt[string]
}

// NewImageEdit starts an image edit request.
func NewImageEdit(model, imagePath, maskPath, prompt string) ImageEditRequest {
	return ImageEditRequest{model: model, imagePath: imagePath, maskPath: maskPath, prompt: prompt}
}

// WithSize sets the size of the edited images.
func (r ImageEditRequest) WithSize(size string) ImageEditRequest {
	r.size = param.Some(size)
	return r
}

// WithResponseFormat sets how edited images are returned.
func (r ImageEditRequest) WithResponseFormat(format string) ImageEditRequest {
	r.responseFormat = param.Some(format)
	return r
}

// WithN sets how many edited images to generate.
func (r ImageEditRequest) WithN(n int64) ImageEditRequest {
	r.n = param.Some(n)
	return r
}

// WithUser tags the request with an end-user identifier.
func (r ImageEditRequest) WithUser(user string) ImageEditRequest {
	r.user = param.Some(user)
	return r
}

func (r ImageEditRequest) form() *Form {
	form := NewForm().
		Text("model", r.model).
		File("image", r.imagePath, "image/png").
		File("mask", r.maskPath, "image/png").
		Text("prompt", r.prompt)
	TextOpt(form, "size", r.size)
	TextOpt(form, "response_format", r.responseFormat)
	TextOpt(form, "n", r.n)
	TextOpt(form, "user", r.user)
	return form
}

// Edit edits an image according to the prompt, constrained by the mask.
func (s ImagesService) Edit(ctx context.Context, req ImageEditRequest) (gjson.Result, error) {
	return s.client.PostMultipart(ctx, "/images/edits", req.form())
}

// ImageVariationRequest carries the parameters for generating variations of
// a local PNG image.
type ImageVariationRequest struct {
	model          string
	imagePath      string
	size           param.Opt[string]
	responseFormat param.Opt[string]
	n              param.Opt[int64]
	user           param.Opt[string]
}

// NewImageVariation starts an image variation request.
func NewImageVariation(model, imagePath string) ImageVariationRequest {
	return ImageVariationRequest{model: model, imagePath: imagePath}
}

// WithSize sets the size of the variation images.
func (r ImageVariationRequest) WithSize(size string) ImageVariationRequest {
	r.size = param.Some(size)
	return r
}

// WithResponseFormat sets how variation images are returned.
func (r ImageVariationRequest) WithResponseFormat(format string) ImageVariationRequest {
	r.responseFormat = param.Some(format)
	return r
}

// WithN sets how many variations to generate.
func (r ImageVariationRequest) WithN(n int64) ImageVariationRequest {
	r.n = param.Some(n)
	return r
}

// WithUser tags the request with an end-user identifier.
func (r ImageVariationRequest) WithUser(user string) ImageVariationRequest {
	r.user = param.Some(user)
	return r
}

func (r ImageVariationRequest) form() *Form {
	form := NewForm().
		Text("model", r.model).
		File("image", r.imagePath, "image/png")
	TextOpt(form, "size", r.size)
	TextOpt(form, "response_format", r.responseFormat)
	TextOpt(form, "n", r.n)
	TextOpt(form, "user", r.user)
	return form
}

// Variation generates variations of the source image.
func (s ImagesService) Variation(ctx context.Context, req ImageVariationRequest) (gjson.Result, error) {
	return s.client.PostMultipart(ctx, "/images/variations", req.form())
}
