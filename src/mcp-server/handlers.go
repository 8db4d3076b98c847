// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/mcp-server/templates"
)

// instructionData holds the data used to populate the MCP server instructions template.
type instructionData struct {
	Tools []toolInfo
	Roles map[string]string // Maps tool roles to tool names for template use
}

// toolInfo represents information about an MCP tool for template rendering.
type toolInfo struct {
	Name        string
	Description string
}

// loadInstructions renders the instructions template with the given tools.
//
// Parameters:
//   - embed: Filesystem holding templates.Instructions
//   - tools: Tool definitions listed in the instructions
//
// Returns:
//   - string: The rendered instruction text sent to clients on initialization
//   - error: If the embedded file cannot be read or the template fails
//
// A role referenced by the template but missing from tools fails rendering.
func loadInstructions(embed templates.EmbedFS, tools []ToolDefinition) (string, error) {
	templateBytes, err := embed.ReadFile(templates.Instructions)
	if err != nil {
		return "", errors.Wrap(err, "failed to load MCP server instructions template")
	}

	data := instructionData{Roles: make(map[string]string, len(tools))}
	for _, tool := range tools {
		data.Tools = append(data.Tools, toolInfo{
			Name:        tool.Tool.Name,
			Description: tool.Tool.Description,
		})
		if tool.Role != "" {
			data.Roles[tool.Role] = tool.Tool.Name
		}
	}

	tmpl, err := template.New("instructions").Option("missingkey=error").Parse(string(templateBytes))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse instructions template")
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", errors.Wrap(err, "failed to execute instructions template")
	}
	return b.String(), nil
}
