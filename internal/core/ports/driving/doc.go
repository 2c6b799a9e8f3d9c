// Package driving provides interfaces for inbound adapters (primary ports).
//
// The HTTP API, CLI, and MCP server drive the application exclusively
// through these interfaces.
package driving
