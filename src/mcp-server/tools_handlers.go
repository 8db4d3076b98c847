// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"os"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/pkg/errors"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
	x509certs "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/certs"
	x509viewer "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/viewer"
)

// maxPathLength bounds the inputs probed as file paths.
const maxPathLength = 4096

// handleParseCertificate decodes a certificate and renders the record.
//
// Parameters:
//   - ctx: Context for cancellation
//   - request: MCP tool call request with "certificate" and optional "format"
//   - env: Server state holding the parser and defaults
//
// Returns:
//   - The rendered record, or a tool error result naming the error kind and phase
//   - A nil error; failures are reported in the result so the client sees them
//
// JSON output is validated against the record schema before it is returned.
func handleParseCertificate(ctx context.Context, request mcp.CallToolRequest, env *Env) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	format, err := x509viewer.ParseFormat(request.GetString("format", env.Config.Defaults.Format))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	rec, err := loadRecord(ctx, env, input)
	if err != nil {
		return toolError(env, toolParseCertificate, err), nil
	}

	out, err := x509viewer.Render(rec, format)
	if err != nil {
		return toolError(env, toolParseCertificate, err), nil
	}

	if format == x509viewer.FormatJSON {
		if err := x509viewer.ValidateJSON([]byte(out)); err != nil {
			return toolError(env, toolParseCertificate, err), nil
		}
	}

	return mcp.NewToolResultText(out), nil
}

// handleFormatDN formats the subject or issuer name of a certificate.
func handleFormatDN(ctx context.Context, request mcp.CallToolRequest, env *Env) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("certificate")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	field := strings.ToLower(request.GetString("field", fieldSubject))
	if field != fieldSubject && field != fieldIssuer {
		return mcp.NewToolResultErrorf("unknown field %q, expected %q or %q", field, fieldSubject, fieldIssuer), nil
	}

	rec, err := loadRecord(ctx, env, input)
	if err != nil {
		return toolError(env, toolFormatDN, err), nil
	}

	dn := rec.Subject
	if field == fieldIssuer {
		dn = rec.Issuer
	}
	return mcp.NewToolResultText(x509viewer.FormatDN(dn)), nil
}

// handleDecodeASN1 dumps the TLV tree of arbitrary DER input.
func handleDecodeASN1(ctx context.Context, request mcp.CallToolRequest, env *Env) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("data")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var node *ber.Node
	if path, ok := localFile(input); ok {
		node, err = decodeFile(env.Parser, path)
	} else {
		node, err = env.Parser.DecodeASN1([]byte(input))
	}
	if err != nil {
		return toolError(env, toolDecodeASN1, err), nil
	}

	return mcp.NewToolResultText(ber.Dump(node)), nil
}

// loadRecord parses input as a local file when one exists at that path and
// as inline text otherwise.
func loadRecord(ctx context.Context, env *Env, input string) (*x509viewer.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		rec *x509viewer.Record
		err error
	)
	if path, ok := localFile(input); ok {
		env.Log.Debugf("reading certificate file %s", path)
		rec, err = env.Parser.ParseFile(path)
	} else {
		rec, err = env.Parser.Parse([]byte(input))
	}
	if err != nil {
		return nil, err
	}

	if rec.Strategy == x509viewer.StrategyManual {
		env.Log.Printf("certificate decoded with the %s strategy", rec.Strategy)
	} else {
		env.Log.Debugf("certificate decoded with the %s strategy", rec.Strategy)
	}
	return rec, nil
}

// decodeFile decodes a file into a TLV tree, reading it as text or DER by extension.
func decodeFile(p *x509viewer.Parser, path string) (*ber.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input file")
	}
	defer f.Close()

	return p.DecodeReader(f, x509certs.IsTextFile(path))
}

// localFile reports whether input names an existing regular file.
// Multi-line input and PEM text are never treated as paths.
func localFile(input string) (string, bool) {
	path := strings.TrimSpace(input)
	if path == "" || len(path) > maxPathLength || strings.ContainsAny(path, "\r\n") {
		return "", false
	}

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return path, true
}

// toolError logs a failed call and converts err into a tool error result.
func toolError(env *Env, tool string, err error) *mcp.CallToolResult {
	var verr *x509viewer.Error
	if errors.As(err, &verr) {
		env.Log.With("tool", tool, "kind", verr.Kind.String(), "phase", string(verr.Phase)).Warnf("%v", err)
	} else {
		env.Log.With("tool", tool).Warnf("%v", err)
	}
	return mcp.NewToolResultErrorf("%s failed: %v", tool, err)
}
