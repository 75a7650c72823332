// Package generation turns a word-count bucket and a difficulty tier into a
// single typing-practice sentence. It owns the prompt template, the two
// option tables, the Completer interface that abstracts the external LLM
// completion service, and the clean-up applied to whatever text the
// provider returns.
//
// Provider implementations live under internal/platform (groq, gemini); this
// package never talks to the network itself.
package generation
