// Package gemini provides the Gemini-backed implementation of the
// generation.Generator interface. It owns client construction, prompt
// dispatch, retry with exponential backoff, and classification of API
// failures into the generation package's error taxonomy.
package gemini
