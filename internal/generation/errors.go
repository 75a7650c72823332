package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrConfiguration is returned when the completion service cannot be used
	// because required configuration (usually the API key) is missing.
	ErrConfiguration = errors.New("completion service not configured")

	// ErrInvalidOption is returned when a word-count or difficulty label is not recognized
	ErrInvalidOption = errors.New("invalid option")

	// ErrGenerationFailed is returned when the completion call fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate sentence")

	// ErrInvalidResponse is returned when the LLM response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")
)

// isGenerationError reports whether err already carries one of the package sentinels.
func isGenerationError(err error) bool {
	return errors.Is(err, ErrConfiguration) ||
		errors.Is(err, ErrInvalidOption) ||
		errors.Is(err, ErrGenerationFailed) ||
		errors.Is(err, ErrInvalidResponse) ||
		errors.Is(err, ErrContentBlocked)
}
