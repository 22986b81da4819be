package oai

import (
	"context"

	"github.com/casualjim/oai/param"
	"github.com/tidwall/gjson"
)

// ChatService talks to the chat completions endpoint.
type ChatService struct {
	client *Client
}

// Chat returns the chat completions service.
func (c *Client) Chat() ChatService {
	return ChatService{client: c}
}

// Message is a single entry in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// SystemMessage returns a message with the system role.
func SystemMessage(content any) Message {
	return Message{Role: "system", Content: content}
}

// UserMessage returns a message with the user role.
func UserMessage(content any) Message {
	return Message{Role: "user", Content: content}
}

// AssistantMessage returns a message with the assistant role.
func AssistantMessage(content any) Message {
	return Message{Role: "assistant", Content: content}
}

// ChatCompletionRequest carries the parameters for a chat completion. Model
// and messages are mandatory; everything else is emitted only when set
// through its With setter.
type ChatCompletionRequest struct {
	model            string
	messages         []Message
	maxTokens        param.Opt[int64]
	temperature      param.Opt[float64]
	topP             param.Opt[float64]
	n                param.Opt[int64]
	stream           param.Opt[bool]
	stop             param.Opt[[]string]
	presencePenalty  param.Opt[float64]
	frequencyPenalty param.Opt[float64]
	logitBias        param.Opt[any]
	user             param.Opt[string]
}

// NewChatCompletion starts a chat completion request for the given model and
// conversation history.
func NewChatCompletion(model string, messages []Message) ChatCompletionRequest {
	return ChatCompletionRequest{model: model, messages: messages}
}

// WithMaxTokens caps the number of tokens generated.
func (r ChatCompletionRequest) WithMaxTokens(n int64) ChatCompletionRequest {
	r.maxTokens = param.Some(n)
	return r
}

// WithTemperature sets the sampling temperature.
func (r ChatCompletionRequest) WithTemperature(t float64) ChatCompletionRequest {
	r.temperature = param.Some(t)
	return r
}

// WithTopP sets the nucleus sampling parameter.
func (r ChatCompletionRequest) WithTopP(p float64) ChatCompletionRequest {
	r.topP = param.Some(p)
	return r
}

// WithN sets how many completions to generate.
func (r ChatCompletionRequest) WithN(n int64) ChatCompletionRequest {
	r.n = param.Some(n)
	return r
}

// WithStream asks the service to stream partial progress.
func (r ChatCompletionRequest) WithStream(stream bool) ChatCompletionRequest {
	r.stream = param.Some(stream)
	return r
}

// WithStop sets the sequences that stop generation.
func (r ChatCompletionRequest) WithStop(stop []string) ChatCompletionRequest {
	r.stop = param.Some(stop)
	return r
}

// WithPresencePenalty sets the presence penalty.
func (r ChatCompletionRequest) WithPresencePenalty(p float64) ChatCompletionRequest {
	r.presencePenalty = param.Some(p)
	return r
}

// WithFrequencyPenalty sets the frequency penalty.
func (r ChatCompletionRequest) WithFrequencyPenalty(p float64) ChatCompletionRequest {
	r.frequencyPenalty = param.Some(p)
	return r
}

// WithLogitBias biases the likelihood of specific tokens.
func (r ChatCompletionRequest) WithLogitBias(bias any) ChatCompletionRequest {
	r.logitBias = param.Some(bias)
	return r
}

// WithUser tags the request with an end-user identifier.
func (r ChatCompletionRequest) WithUser(user string) ChatCompletionRequest {
	r.user = param.Some(user)
	return r
}

func (r ChatCompletionRequest) MarshalJSON() ([]byte, error) {
	obj := param.NewObject().
		Set("model", r.model).
		Set("messages", r.messages)
	param.SetOpt(obj, "max_tokens", r.maxTokens)
	param.SetOpt(obj, "temperature", r.temperature)
	param.SetOpt(obj, "top_p", r.topP)
	param.SetOpt(obj, "n", r.n)
	param.SetOpt(obj, "stream", r.stream)
	param.SetOpt(obj, "stop", r.stop)
	param.SetOpt(obj, "presence_penalty", r.presencePenalty)
	param.SetOpt(obj, "frequency_penalty", r.frequencyPenalty)
	param.SetOpt(obj, "logit_bias", r.logitBias)
	param.SetOpt(obj, "user", r.user)
	return obj.MarshalJSON()
}

// Create requests a chat completion.
func (s ChatService) Create(ctx context.Context, req ChatCompletionRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, "/chat/completions", req)
}
