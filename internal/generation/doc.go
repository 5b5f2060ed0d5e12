// Package generation provides the interface and error taxonomy for
// interacting with external AI/LLM services. It abstracts the details of
// LLM API integration (Gemini), allowing task executors to ask questions
// of a model without coupling to a specific external service.
package generation
