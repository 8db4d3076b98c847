// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"

	x509viewer "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/viewer"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/logger"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/version"
)

// serverName is the implementation name reported during initialization.
const serverName = "X.509 Certificate Viewer"

// Env is the per-server state handed to tool and resource handlers.
//
// Fields:
//   - Config: Effective server configuration
//   - Parser: Certificate parser built from Config limits; safe for concurrent use
//   - Log: Structured logger writing to stderr
//   - Embed: Embedded templates and documentation
//   - Version: Server version string
//   - Tools: Registered tools, listed by the info://version resource
type Env struct {
	Config  *Config
	Parser  *x509viewer.Parser
	Log     *logger.MCPLogger
	Embed   templates.EmbedFS
	Version string
	Tools   []ToolDefinition
}

// ToolHandler processes a tool call with access to the server [Env].
type ToolHandler func(ctx context.Context, request mcp.CallToolRequest, env *Env) (*mcp.CallToolResult, error)

// ResourceHandler reads a resource with access to the server [Env].
type ResourceHandler func(ctx context.Context, request mcp.ReadResourceRequest, env *Env) ([]mcp.ResourceContents, error)

// ToolDefinition holds a tool definition and its handler.
//
// Fields:
//   - Tool: The MCP tool definition containing name, description, and input schema
//   - Handler: The function that implements the tool's logic
//   - Role: Short name used by the instructions template to refer to the tool
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ResourceDefinition pairs an MCP resource with its handler.
type ResourceDefinition struct {
	Resource mcp.Resource
	Handler  ResourceHandler
}

// ServerDependencies holds all dependencies needed to create the MCP server.
// It is filled by [ServerBuilder] and [NewCLIFramework]; zero fields get defaults in Build.
type ServerDependencies struct {
	Config       *Config
	Embed        templates.EmbedFS
	Version      string
	Logger       *logger.MCPLogger
	Tools        []ToolDefinition
	Resources    []ResourceDefinition
	Instructions string
}

// ServerBuilder helps construct the [MCP] server with proper dependencies using a fluent interface.
//
// Example:
//
//	s, err := NewServerBuilder().
//	    WithConfig(config).
//	    WithVersion("1.0.0").
//	    WithDefaultTools().
//	    WithDefaultResources().
//	    Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder creates a new server builder with default empty dependencies.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithEmbed sets the embedded filesystem for templates and documentation.
func (b *ServerBuilder) WithEmbed(embed templates.EmbedFS) *ServerBuilder {
	b.deps.Embed = embed
	return b
}

// WithVersion sets the version reported to clients.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithLogger sets the structured logger used by handlers.
func (b *ServerBuilder) WithLogger(log *logger.MCPLogger) *ServerBuilder {
	b.deps.Logger = log
	return b
}

// WithTools adds tools to the server.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithResources adds resources to the server.
func (b *ServerBuilder) WithResources(resources ...ResourceDefinition) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithDefaultTools adds the certificate tools returned by createTools.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	return b.WithTools(createTools()...)
}

// WithDefaultResources adds the resources returned by createResources.
func (b *ServerBuilder) WithDefaultResources() *ServerBuilder {
	return b.WithResources(createResources()...)
}

// WithInstructions sets the instructions sent to clients during initialization.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// env fills in defaults for unset dependencies and returns the handler state.
func (b *ServerBuilder) env() *Env {
	if b.deps.Config == nil {
		b.deps.Config = DefaultConfig()
	}
	if b.deps.Embed == nil {
		b.deps.Embed = templates.MagicEmbed
	}
	if b.deps.Version == "" {
		b.deps.Version = version.Version
	}
	if b.deps.Logger == nil {
		b.deps.Logger = logger.NewMCPLogger(nil, true)
	}

	return &Env{
		Config:  b.deps.Config,
		Parser:  x509viewer.New(b.deps.Config.ParserOptions()...),
		Log:     b.deps.Logger,
		Embed:   b.deps.Embed,
		Version: b.deps.Version,
		Tools:   b.deps.Tools,
	}
}

// Build creates the [MCP] server with all configured dependencies.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - An error if two tools or two resources share a name or URI
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	env := b.env()

	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}
	s := server.NewMCPServer(serverName, env.Version, opts...)

	tools := make(map[string]bool, len(b.deps.Tools))
	for _, tool := range b.deps.Tools {
		if tools[tool.Tool.Name] {
			return nil, errors.Errorf("duplicate tool %q", tool.Tool.Name)
		}
		tools[tool.Tool.Name] = true
		s.AddTool(tool.Tool, bindTool(tool.Handler, env))
	}

	resources := make(map[string]bool, len(b.deps.Resources))
	for _, resource := range b.deps.Resources {
		if resources[resource.Resource.URI] {
			return nil, errors.Errorf("duplicate resource %q", resource.Resource.URI)
		}
		resources[resource.Resource.URI] = true
		s.AddResource(resource.Resource, bindResource(resource.Handler, env))
	}

	return s, nil
}

// bindTool adapts a ToolHandler to the mcp-go handler signature.
func bindTool(h ToolHandler, env *Env) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return h(ctx, request, env)
	}
}

// bindResource adapts a ResourceHandler to the mcp-go handler signature.
func bindResource(h ResourceHandler, env *Env) server.ResourceHandlerFunc {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return h(ctx, request, env)
	}
}
