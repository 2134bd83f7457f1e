// Package logging builds the zerolog logger shared by the CLI, the store
// and the MCP server. Log lines never carry secrets.
package logging
