package oai

import (
	"context"

	"github.com/casualjim/oai/param"
	"github.com/tidwall/gjson"
)

// AudioService talks to the audio transcription and translation endpoints.
type AudioService struct {
	client *Client
}

// Audio returns the audio service.
func (c *Client) Audio() AudioService {
	return AudioService{client: c}
}

// TranscriptionRequest carries the parameters for transcribing a local audio
// file. Model and file path are mandatory; the file is read when the request
// is sent.
type TranscriptionRequest struct {
	model          string
	filePath       string
	prompt         param.Opt[string]
	responseFormat param.Opt[string]
	temperature    param.Opt[float64]
	language       param.Opt[string]
}

// NewTranscription starts a transcription request.
func NewTranscription(model, filePath string) TranscriptionRequest {
	return TranscriptionRequest{model: model, filePath: filePath}
}

// WithPrompt guides the transcription style or continues a previous segment.
func (r TranscriptionRequest) WithPrompt(prompt string) TranscriptionRequest {
	r.prompt = param.Some(prompt)
	return r
}

// WithResponseFormat sets the transcript format, e.g. "json" or "text".
func (r TranscriptionRequest) WithResponseFormat(format string) TranscriptionRequest {
	r.responseFormat = param.Some(format)
	return r
}

// WithTemperature sets the sampling temperature.
func (r TranscriptionRequest) WithTemperature(t float64) TranscriptionRequest {
	r.temperature = param.Some(t)
	return r
}

// WithLanguage hints the language of the input audio as an ISO-639-1 code.
func (r TranscriptionRequest) WithLanguage(language string) TranscriptionRequest {
	r.language = param.Some(language)
	return r
}

func (r TranscriptionRequest) form() *Form {
	form := NewForm().
		Text("model", r.model).
		File("file", r.filePath, "audio/mpeg")
	TextOpt(form, "prompt", r.prompt)
	TextOpt(form, "response_format", r.responseFormat)
	TextOpt(form, "temperature", r.temperature)
	TextOpt(form, "language", r.language)
	return form
}

// Transcribe transcribes the audio file in its source language.
func (s AudioService) Transcribe(ctx context.Context, req TranscriptionRequest) (gjson.Result, error) {
	return s.client.PostMultipart(ctx, "/audio/transcriptions", req.form())
}

// TranslationRequest carries the parameters for translating a local audio
// file into English. Model and file path are mandatory.
type TranslationRequest struct {
	model          string
	filePath       string
	prompt         param.Opt[string]
	responseFormat param.Opt[string]
	temperature    param.Opt[float64]
}

// NewTranslation starts a translation request.
func NewTranslation(model, filePath string) TranslationRequest {
	return TranslationRequest{model: model, filePath: filePath}
}

// WithPrompt guides the translation style.
func (r TranslationRequest) WithPrompt(prompt string) TranslationRequest {
	r.prompt = param.Some(prompt)
	return r
}

// WithResponseFormat sets the transcript format.
func (r TranslationRequest) WithResponseFormat(format string) TranslationRequest {
	r.responseFormat = param.Some(format)
	return r
}

// WithTemperature sets the sampling temperature.
func (r TranslationRequest) WithTemperature(t float64) TranslationRequest {
	r.temperature = param.Some(t)
	return r
}

func (r TranslationRequest) form() *Form {
	form := NewForm().
		Text("model", r.model).
		File("file", r.filePath, "audio/mpeg")
	TextOpt(form, "prompt", r.prompt)
	TextOpt(form, "response_format", r.responseFormat)
	TextOpt(form, "temperature", r.temperature)
	return form
}

// Translate translates the audio file into English.
func (s AudioService) Translate(ctx context.Context, req TranslationRequest) (gjson.Result, error) {
	return s.client.PostMultipart(ctx, "/audio/translations", req.form())
}
