// Package mcptools exposes the credential store and the password generator
// as Model Context Protocol tools.
package mcptools
