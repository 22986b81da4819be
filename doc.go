/*
Package oai is a typed client for the OpenAI HTTP API, covering chat
completions, embeddings, images, audio, moderation, fine-tuning, assistants,
threads and runs, vector stores, and organization project management.

The package is built around three pieces:

  - Request builders: each endpoint takes a request value constructed from
    its mandatory fields, with optional fields added through chainable With
    setters. Only fields that were explicitly set appear in the serialized
    body; absent and empty are different things.
  - One shared Client: a single authenticated transport holding the bearer
    credential and the base URL. Every endpoint service is a stateless view
    over it, and all of them see base URL changes immediately.
  - A closed error taxonomy: every failure is an *Error tagged Transport,
    Encoding, or LocalIO, wrapping its cause.

# Basic Usage

	client := oai.New(os.Getenv("OPENAI_API_KEY"))

	resp, err := client.Chat().Create(ctx, oai.NewChatCompletion(
		"gpt-4o-mini",
		[]oai.Message{oai.UserMessage("hello")},
	).WithTemperature(0.5))
	if err != nil {
		// handle err
	}
	fmt.Println(resp.Get("choices.0.message.content").String())

Responses are gjson.Result values: the decoded JSON tree with no schema
enforced, queried with gjson paths. The client does not interpret HTTP status
codes; a response whose body is valid JSON is returned as-is, so service
error envelopes can be inspected the same way:

	if e := resp.Get("error.message"); e.Exists() {
		// the service rejected the request
	}

# Errors

Match failure categories with errors.As:

	var apiErr *oai.Error
	if errors.As(err, &apiErr) && apiErr.Kind == oai.ErrTransport {
		// network-level failure, maybe worth retrying upstream
	}

File reads for multipart uploads happen before any network I/O, so a missing
upload file fails fast with ErrLocalIO and nothing is sent.

# Concurrency

A Client is safe for concurrent use across goroutines for all request
primitives. SetBaseURL is the one exception: it is a plain field write, so
changing the base URL while requests are in flight is a data race left to the
caller to avoid.

The package performs no retries, no streaming, and no response caching.
Timeouts and connection pooling come from the injected *http.Client.
*/
package oai
