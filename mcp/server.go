package mcp

import (
	"github.com/ka2n/mado/api"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server for mado
type Server struct {
	server *server.MCPServer
}

// NewServer creates a new MCP server instance exposing the given gateway
func NewServer(gw *api.RESTGateway) *Server {
	s := server.NewMCPServer("mado", api.Version)

	registerTools(s, gw)

	return &Server{
		server: s,
	}
}

// Run starts the MCP server
func (s *Server) Run() error {
	return server.ServeStdio(s.server)
}

// registerTools registers all available tools with the MCP server
func registerTools(s *server.MCPServer, gw *api.RESTGateway) {
	tools := InitTools(gw)
	s.AddTools(tools...)
}

func newServerTool(tool mcp.Tool, handler server.ToolHandlerFunc) server.ServerTool {
	return server.ServerTool{
		Tool:    tool,
		Handler: handler,
	}
}
