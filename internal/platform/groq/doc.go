// Package groq provides a generation.Completer backed by Groq's
// OpenAI-compatible chat completion endpoint, reached through the
// openai-go SDK with a custom base URL.
//
// The completer sends the prompt as a single user message with the
// configured model and temperature, disables SDK retries, and returns the
// first choice's content.
package groq
