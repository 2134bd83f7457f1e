// Package app wires application dependencies for the CLI and MCP server.
//
// It layers configuration from defaults, a YAML file and the environment,
// then builds the logger, the storage backend and the credential store,
// exposing them via the Wire struct.
package app
