// README: Schema-constrained generation client over a pluggable provider.
package ai

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentgo/internal/logger"
)

// Provider is the raw model boundary. Implementations return text (expected
// to be JSON when asked for it) and images; they do not validate shape.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (mime string, data []byte, err error)
}

// Client wraps a Provider with the input/output schema contract: inputs are
// validated before the call, raw output after it. A structurally wrong
// answer is an error, never a value handed to the caller unchecked.
type Client struct {
	provider Provider
	timeout  time.Duration
	log      logger.ILogger
}

func NewClient(provider Provider, timeout time.Duration, log logger.ILogger) *Client {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Client{provider: provider, timeout: timeout, log: log}
}

// Generate validates input against inputSchema, runs the model with a bounded
// context, and validates the decoded JSON answer against outputSchema.
// No retry: a failed call surfaces to the caller as-is.
func (c *Client) Generate(ctx context.Context, prompt string, input map[string]any, inputSchema, outputSchema Schema) (map[string]any, error) {
	if err := inputSchema.Validate(input); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.provider.Complete(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, ErrGenerationTimeout
		}
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	var out map[string]any
	if err := json.Unmarshal([]byte(cleanJSONString(raw)), &out); err != nil {
		c.log.Warning("model returned non-JSON output", logger.Error(err))
		return nil, fmt.Errorf("%w: not valid JSON: %v", ErrSchemaViolation, err)
	}
	if err := outputSchema.Validate(out); err != nil {
		c.log.Warning("model output failed schema validation", logger.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrSchemaViolation, err)
	}
	return out, nil
}

// GenerateImage runs the image model and returns the payload as a data URI.
// A response with no image content is a failure, not an empty success.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	mime, data, err := c.provider.GenerateImage(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", ErrGenerationTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	if len(data) == 0 {
		return "", ErrNoMediaReturned
	}
	if mime == "" {
		mime = "image/png"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Decode re-marshals a validated output map into a typed struct.
func Decode(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// cleanJSONString removes markdown code fences if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
