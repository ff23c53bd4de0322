// Package mcp implements the Model Context Protocol server for mado.
//
// The mcp package provides:
// - MCP server implementation for external tool integration
// - Imperative record fetch tools for MCP clients
// - Tool argument decoding and validation
package mcp
