// README: Typed failures for the generation boundary.
package ai

import "errors"

var (
	// ErrInvalidInput: the request failed input-schema validation and was
	// never sent to the model.
	ErrInvalidInput = errors.New("invalid generation input")
	// ErrSchemaViolation: the model answered, but not in the declared shape.
	ErrSchemaViolation = errors.New("model output violates schema")
	// ErrNoMediaReturned: an image call came back without image content.
	ErrNoMediaReturned = errors.New("no media returned")
	// ErrGenerationTimeout: the bounded call ran out of time.
	ErrGenerationTimeout = errors.New("generation timed out")
	// ErrGeneration wraps provider-side failures (network, quota, refusal).
	ErrGeneration = errors.New("generation failed")
)
