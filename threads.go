package oai

import (
	"context"
	"fmt"

	"github.com/casualjim/oai/param"
	"github.com/tidwall/gjson"
)

// ThreadsService talks to the threads endpoints, covering threads, their
// messages, runs, and run steps.
type ThreadsService struct {
	client *Client
}

// Threads returns the threads service.
func (c *Client) Threads() ThreadsService {
	return ThreadsService{client: c}
}

// ThreadRequest carries the parameters for creating or modifying a thread.
// Every field is optional; the zero request creates an empty thread.
type ThreadRequest struct {
	messages      param.Opt[[]Message]
	toolResources param.Opt[any]
	metadata      param.Opt[any]
}

// NewThread starts a thread request.
func NewThread() ThreadRequest {
	return ThreadRequest{}
}

// WithMessages seeds the thread with an initial conversation.
func (r ThreadRequest) WithMessages(messages []Message) ThreadRequest {
	r.messages = param.Some(messages)
	return r
}

// WithToolResources sets the resources available to tools on this thread.
func (r ThreadRequest) WithToolResources(resources any) ThreadRequest {
	r.toolResources = param.Some(resources)
	return r
}

// WithMetadata attaches caller-defined metadata.
func (r ThreadRequest) WithMetadata(metadata any) ThreadRequest {
	r.metadata = param.Some(metadata)
	return r
}

func (r ThreadRequest) MarshalJSON() ([]byte, error) {
	obj := param.NewObject()
	param.SetOpt(obj, "messages", r.messages)
	param.SetOpt(obj, "tool_resources", r.toolResources)
	param.SetOpt(obj, "metadata", r.metadata)
	return obj.MarshalJSON()
}

// Create creates a thread.
func (s ThreadsService) Create(ctx context.Context, req ThreadRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, "/threads", req)
}

// Retrieve fetches a thread by ID.
func (s ThreadsService) Retrieve(ctx context.Context, threadID string) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/threads/%s", threadID))
}

// Modify updates a thread's tool resources and metadata. Seed messages
// cannot be changed after creation and are ignored here.
func (s ThreadsService) Modify(ctx context.Context, threadID string, req ThreadRequest) (gjson.Result, error) {
	body := param.NewObject()
	param.SetOpt(body, "tool_resources", req.toolResources)
	param.SetOpt(body, "metadata", req.metadata)
	return s.client.PostJSON(ctx, fmt.Sprintf("/threads/%s", threadID), body)
}

// Delete deletes a thread.
func (s ThreadsService) Delete(ctx context.Context, threadID string) (gjson.Result, error) {
	return s.client.Delete(ctx, fmt.Sprintf("/threads/%s", threadID))
}

// ThreadMessageRequest carries the parameters for adding a message to a
// thread. Role and content are mandatory.
type ThreadMessageRequest struct {
	role        string
	content     any
	attachments param.Opt[any]
	metadata    param.Opt[any]
}

// NewThreadMessage starts a thread message request.
func NewThreadMessage(role string, content any) ThreadMessageRequest {
	return ThreadMessageRequest{role: role, content: content}
}

// WithAttachments attaches files to the message.
func (r ThreadMessageRequest) WithAttachments(attachments any) ThreadMessageRequest {
	r.attachments = param.Some(attachments)
	return r
}

// WithMetadata attaches caller-defined metadata.
func (r ThreadMessageRequest) WithMetadata(metadata any) ThreadMessageRequest {
	r.metadata = param.Some(metadata)
	return r
}

func (r ThreadMessageRequest) MarshalJSON() ([]byte, error) {
	obj := param.NewObject().
		Set("role", r.role).
		Set("content", r.content)
	param.SetOpt(obj, "attachments", r.attachments)
	param.SetOpt(obj, "metadata", r.metadata)
	return obj.MarshalJSON()
}

// CreateMessage adds a message to a thread.
func (s ThreadsService) CreateMessage(ctx context.Context, threadID string, req ThreadMessageRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, fmt.Sprintf("/threads/%s/messages", threadID), req)
}

// ListMessages lists the messages in a thread.
func (s ThreadsService) ListMessages(ctx context.Context, threadID string, q ListQuery) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/threads/%s/messages", threadID)+q.encode())
}

// RetrieveMessage fetches a message by ID.
func (s ThreadsService) RetrieveMessage(ctx context.Context, threadID, messageID string) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/threads/%s/messages/%s", threadID, messageID))
}

// ModifyMessage replaces a message's metadata.
func (s ThreadsService) ModifyMessage(ctx context.Context, threadID, messageID string, metadata any) (gjson.Result, error) {
	body := param.NewObject().Set("metadata", metadata)
	return s.client.PostJSON(ctx, fmt.Sprintf("/threads/%s/messages/%s", threadID, messageID), body)
}

// DeleteMessage deletes a message from a thread.
func (s ThreadsService) DeleteMessage(ctx context.Context, threadID, messageID string) (gjson.Result, error) {
	return s.client.Delete(ctx, fmt.Sprintf("/threads/%s/messages/%s", threadID, messageID))
}

// RunRequest carries the parameters for starting a run on a thread. The
// assistant ID is mandatory.
type RunRequest struct {
	assistantID            string
	model                  param.Opt[string]
	instructions           param.Opt[string]
	additionalInstructions param.Opt[string]
	additionalMessages     param.Opt[[]Message]
	tools                  param.Opt[[]any]
	metadata               param.Opt[any]
	temperature            param.Opt[float64]
	topP                   param.Opt[float64]
	stream                 param.Opt[bool]
	maxPromptTokens        param.Opt[int64]
	maxCompletionTokens    param.Opt[int64]
	truncationStrategy     param.Opt[any]
	toolChoice             param.Opt[any]
	parallelToolCalls      param.Opt[bool]
	responseFormat         param.Opt[any]
}

// NewRun starts a run request for the given assistant.
func NewRun(assistantID string) RunRequest {
	return RunRequest{assistantID: assistantID}
}

// WithModel overrides the assistant's model for this run.
func (r RunRequest) WithModel(model string) RunRequest {
	r.model = param.Some(model)
	return r
}

// WithInstructions overrides the assistant's instructions for this run.
func (r RunRequest) WithInstructions(instructions string) RunRequest {
	r.instructions = param.Some(instructions)
	return r
}

// WithAdditionalInstructions appends instructions without replacing the
// assistant's own.
func (r RunRequest) WithAdditionalInstructions(instructions string) RunRequest {
	r.additionalInstructions = param.Some(instructions)
	return r
}

// WithAdditionalMessages adds messages to the thread before the run starts.
func (r RunRequest) WithAdditionalMessages(messages []Message) RunRequest {
	r.additionalMessages = param.Some(messages)
	return r
}

// WithTools overrides the tools available during this run.
func (r RunRequest) WithTools(tools []any) RunRequest {
	r.tools = param.Some(tools)
	return r
}

// WithMetadata attaches caller-defined metadata.
func (r RunRequest) WithMetadata(metadata any) RunRequest {
	r.metadata = param.Some(metadata)
	return r
}

// WithTemperature sets the sampling temperature.
func (r RunRequest) WithTemperature(t float64) RunRequest {
	r.temperature = param.Some(t)
	return r
}

// WithTopP sets the nucleus sampling parameter.
func (r RunRequest) WithTopP(p float64) RunRequest {
	r.topP = param.Some(p)
	return r
}

// WithStream asks the service to stream run events.
func (r RunRequest) WithStream(stream bool) RunRequest {
	r.stream = param.Some(stream)
	return r
}

// WithMaxPromptTokens caps the prompt tokens used across the run.
func (r RunRequest) WithMaxPromptTokens(n int64) RunRequest {
	r.maxPromptTokens = param.Some(n)
	return r
}

// WithMaxCompletionTokens caps the completion tokens used across the run.
func (r RunRequest) WithMaxCompletionTokens(n int64) RunRequest {
	r.maxCompletionTokens = param.Some(n)
	return r
}

// WithTruncationStrategy controls how the thread is truncated to fit the
// context window.
func (r RunRequest) WithTruncationStrategy(strategy any) RunRequest {
	r.truncationStrategy = param.Some(strategy)
	return r
}

// WithToolChoice controls which tool the model is required to call.
func (r RunRequest) WithToolChoice(choice any) RunRequest {
	r.toolChoice = param.Some(choice)
	return r
}

// WithParallelToolCalls enables parallel tool calling during the run.
func (r RunRequest) WithParallelToolCalls(parallel bool) RunRequest {
	r.parallelToolCalls = param.Some(parallel)
	return r
}

// WithResponseFormat constrains the model's output format.
func (r RunRequest) WithResponseFormat(format any) RunRequest {
	r.responseFormat = param.Some(format)
	return r
}

func (r RunRequest) MarshalJSON() ([]byte, error) {
	obj := param.NewObject().Set("assistant_id", r.assistantID)
	param.SetOpt(obj, "model", r.model)
	param.SetOpt(obj, "instructions", r.instructions)
	param.SetOpt(obj, "additional_instructions", r.additionalInstructions)
	param.SetOpt(obj, "additional_messages", r.additionalMessages)
	param.SetOpt(obj, "tools", r.tools)
	param.SetOpt(obj, "metadata", r.metadata)
	param.SetOpt(obj, "temperature", r.temperature)
	param.SetOpt(obj, "top_p", r.topP)
	param.SetOpt(obj, "stream", r.stream)
	param.SetOpt(obj, "max_prompt_tokens", r.maxPromptTokens)
	param.SetOpt(obj, "max_completion_tokens", r.maxCompletionTokens)
	param.SetOpt(obj, "truncation_strategy", r.truncationStrategy)
	param.SetOpt(obj, "tool_choice", r.toolChoice)
	param.SetOpt(obj, "parallel_tool_calls", r.parallelToolCalls)
	param.SetOpt(obj, "response_format", r.responseFormat)
	return obj.MarshalJSON()
}

// CreateRun starts a run on a thread.
func (s ThreadsService) CreateRun(ctx context.Context, threadID string, req RunRequest) (gjson.Result, error) {
	return s.client.PostJSON(ctx, fmt.Sprintf("/threads/%s/runs", threadID), req)
}

// ListRuns lists the runs of a thread.
func (s ThreadsService) ListRuns(ctx context.Context, threadID string, q ListQuery) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/threads/%s/runs", threadID)+q.encode())
}

// RetrieveRun fetches a run by ID.
func (s ThreadsService) RetrieveRun(ctx context.Context, threadID, runID string) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/threads/%s/runs/%s", threadID, runID))
}

// ModifyRun replaces a run's metadata.
func (s ThreadsService) ModifyRun(ctx context.Context, threadID, runID string, metadata any) (gjson.Result, error) {
	body := param.NewObject().Set("metadata", metadata)
	return s.client.PostJSON(ctx, fmt.Sprintf("/threads/%s/runs/%s", threadID, runID), body)
}

// DeleteRun deletes a run.
func (s ThreadsService) DeleteRun(ctx context.Context, threadID, runID string) (gjson.Result, error) {
	return s.client.Delete(ctx, fmt.Sprintf("/threads/%s/runs/%s", threadID, runID))
}

// SubmitToolOutputs hands tool call results back to a run that is waiting on
// them.
func (s ThreadsService) SubmitToolOutputs(ctx context.Context, threadID, runID string, toolOutputs []any, stream param.Opt[bool]) (gjson.Result, error) {
	body := param.NewObject().Set("tool_outputs", toolOutputs)
	param.SetOpt(body, "stream", stream)
	return s.client.PostJSON(ctx, fmt.Sprintf("/threads/%s/runs/%s/submit_tool_outputs", threadID, runID), body)
}

// CancelRun cancels an in-progress run.
func (s ThreadsService) CancelRun(ctx context.Context, threadID, runID string) (gjson.Result, error) {
	return s.client.PostJSON(ctx, fmt.Sprintf("/threads/%s/runs/%s/cancel", threadID, runID), param.NewObject())
}

// ListRunSteps lists the steps of a run.
func (s ThreadsService) ListRunSteps(ctx context.Context, threadID, runID string, q ListQuery) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/threads/%s/runs/%s/steps", threadID, runID)+q.encode())
}

// RetrieveRunStep fetches a run step by ID.
func (s ThreadsService) RetrieveRunStep(ctx context.Context, threadID, runID, stepID string) (gjson.Result, error) {
	return s.client.Get(ctx, fmt.Sprintf("/threads/%s/runs/%s/steps/%s", threadID, runID, stepID))
}
