package summarizer

import (
	"errors"
	"net/http"

	"github.com/anthropics/anthropic-sdk-go"
	ollama "github.com/ollama/ollama/api"
	openai "github.com/sashabaranov/go-openai"

	"docsum/internal/resilience/retry"
)

// classify maps provider SDK errors carrying an HTTP status to
// *retry.HTTPError so retry can tell transient faults from permanent ones.
// The provider error stays reachable through errors.As.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var openaiAPIErr *openai.APIError
	if errors.As(err, &openaiAPIErr) {
		return &retry.HTTPError{StatusCode: openaiAPIErr.HTTPStatusCode, Message: openaiAPIErr.Message, Err: err}
	}

	var openaiReqErr *openai.RequestError
	if errors.As(err, &openaiReqErr) && openaiReqErr.HTTPStatusCode != 0 {
		return &retry.HTTPError{StatusCode: openaiReqErr.HTTPStatusCode, Message: openaiReqErr.Error(), Err: err}
	}

	var anthropicErr *anthropic.Error
	if errors.As(err, &anthropicErr) {
		return &retry.HTTPError{StatusCode: anthropicErr.StatusCode, Message: http.StatusText(anthropicErr.StatusCode), Err: err}
	}

	var ollamaErr ollama.StatusError
	if errors.As(err, &ollamaErr) {
		msg := ollamaErr.ErrorMessage
		if msg == "" {
			msg = ollamaErr.Status
		}
		return &retry.HTTPError{StatusCode: ollamaErr.StatusCode, Message: msg, Err: err}
	}

	return err
}

// statusCode returns the HTTP status carried by err, or 0.
func statusCode(err error) int {
	var httpErr *retry.HTTPError
	if errors.As(classify(err), &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
