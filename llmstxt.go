// Package llmstxt discovers and retrieves developer documentation for a URL,
// following the llms.txt convention (a machine-readable manifest of
// documentation links) and falling back to heuristic link discovery and
// content cleaning when no manifest exists. It is designed to be invoked by
// an AI assistant runtime as a callable tool: given a URL and a natural
// language query, it returns the most relevant documentation text.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, gemini/, jina/).
package llmstxt
