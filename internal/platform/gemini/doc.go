// Package gemini provides an implementation of the generation.Completer interface
// that uses Google's Gemini API for producing practice sentences.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the sentence service to Google's external Gemini AI service
// without exposing the details of the external service to the core
// application.
//
// Key components:
//
// 1. Completer:
//   - Implements the generation.Completer interface
//   - Sends the rendered prompt as a single text content
//   - Applies the configured temperature
//
// 2. Error Handling:
//   - A missing API key is reported as generation.ErrConfiguration
//   - Transport and API failures become generation.ErrGenerationFailed
//   - Safety blocks become generation.ErrContentBlocked
//   - Empty candidates become generation.ErrInvalidResponse
//
// The package depends on the google.golang.org/genai client library and never
// retries a failed call.
package gemini
