// Package query defines the provider-agnostic request/response types and the
// single-shot Invoker for asking a hosted language model one question.
//
// Core goals:
//   - One synchronous request, one response; no conversation state
//   - Normalize vendor output into an ordered sequence of Items
//   - Keep the remote service behind a small Client interface so it can be
//     faked in tests (MockClient)
//
// Providers (e.g. OpenAI, Anthropic) implement the Client interface from this
// package so callers remain decoupled from vendor SDKs.
package query
