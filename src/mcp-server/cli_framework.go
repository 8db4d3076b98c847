// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/mark3labs/mcp-go/server"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/helper/posix"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/logger"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/mcp-server/templates"
)

// cliHelpData holds the data used to populate the CLI help template.
//
// Fields:
//   - ExeName: The name of the executable binary for command examples
//   - InstructionsFlagName: The formatted instructions flag name (e.g., "--instructions")
//   - ConfigFlagName: The formatted config flag name (e.g., "--config")
//   - HelpFlagName: The formatted help flag name (e.g., "--help")
type cliHelpData struct {
	ExeName              string
	InstructionsFlagName string
	ConfigFlagName       string
	HelpFlagName         string
}

// CLIFramework integrates Cobra CLI with MCP server capabilities.
//
// Key features:
//   - Dynamic executable naming based on actual binary path (not hardcoded)
//   - [Gopls-style] --instructions flag for displaying the client workflows
//   - Configuration file support via --config flag or MCP_X509_CONFIG_FILE environment variable
//   - Default MCP server startup when no arguments are provided
//   - Shutdown through the command context
//
// [Gopls-style]: https://tip.golang.org/gopls/features/mcp#instructions-to-the-model
type CLIFramework struct {
	configFile   string
	embed        templates.EmbedFS
	version      string
	log          *logger.MCPLogger
	tools        []ToolDefinition
	resources    []ResourceDefinition
	instructions string
	stdin        io.Reader
	stdout       io.Writer
}

// NewCLIFramework creates a new CLI framework instance with MCP server integration.
//
// Parameters:
//   - configFile: Path to the MCP server configuration file.
//     Can be overridden via --config flag; empty falls back to MCP_X509_CONFIG_FILE.
//   - deps: Server dependencies. Config is ignored; it is loaded when the server starts.
//
// The framework speaks the protocol on os.Stdin and os.Stdout. A nil Logger
// in deps gets a structured logger on os.Stderr.
func NewCLIFramework(configFile string, deps ServerDependencies) *CLIFramework {
	log := deps.Logger
	if log == nil {
		log = logger.NewMCPLogger(os.Stderr, false)
	}

	return &CLIFramework{
		configFile:   configFile,
		embed:        deps.Embed,
		version:      deps.Version,
		log:          log,
		tools:        deps.Tools,
		resources:    deps.Resources,
		instructions: deps.Instructions,
		stdin:        os.Stdin,
		stdout:       os.Stdout,
	}
}

// BuildRootCommand creates the root Cobra command with integrated MCP server capabilities.
//
// Command behavior:
//   - With --instructions: Prints the client instructions and exits
//   - Without arguments: Starts the MCP server on stdio
//   - With arguments: Fails, there are no subcommands
//
// Returns:
//   - *cobra.Command: Root command with MCP server integration
//   - error: If the embedded help template is missing or malformed
func (cf *CLIFramework) BuildRootCommand() (*cobra.Command, error) {
	if cf.embed == nil {
		return nil, errors.New("CLIFramework embed filesystem not initialized")
	}

	exeName := posix.ExecutableName("x509-cert-viewer-mcp")

	rootCmd := &cobra.Command{
		Use:           exeName,
		Short:         "X.509 certificate viewer MCP server",
		Version:       cf.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Registered early so its name can be used in the help template.
	rootCmd.Flags().BoolP("help", "h", false, "help for "+exeName)

	var showInstructions bool
	rootCmd.PersistentFlags().BoolVar(&showInstructions, "instructions", false, "print the workflows sent to MCP clients")
	rootCmd.PersistentFlags().StringVar(&cf.configFile, "config", cf.configFile, "path to MCP server configuration file")

	instructionsFlagName, configFlagName, helpFlagName := extractFlagNames(rootCmd)

	longDesc, examples, err := cf.loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName)
	if err != nil {
		return nil, errors.Wrap(err, "failed to process CLI help template")
	}
	rootCmd.Long = longDesc
	rootCmd.Example = examples

	rootCmd.RunE = cf.createRootCommandRunE(&showInstructions, exeName)

	return rootCmd, nil
}

// loadAndExecuteCLIHelpTemplate loads the CLI help template from the embedded filesystem,
// executes it with dynamic data, and splits the result into Long description and Examples.
func (cf *CLIFramework) loadAndExecuteCLIHelpTemplate(exeName, instructionsFlagName, configFlagName, helpFlagName string) (longDesc, examples string, err error) {
	templateBytes, err := cf.embed.ReadFile(templates.CLIHelp)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to load CLI help template")
	}

	data := cliHelpData{
		ExeName:              exeName,
		InstructionsFlagName: instructionsFlagName,
		ConfigFlagName:       configFlagName,
		HelpFlagName:         helpFlagName,
	}

	tmpl, err := template.New("cli_help").Parse(string(templateBytes))
	if err != nil {
		return "", "", errors.Wrap(err, "failed to parse CLI help template")
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", "", errors.Wrap(err, "failed to execute CLI help template")
	}

	return parseTemplateResult(result.String())
}

// parseTemplateResult splits rendered help text at the "## Examples" line.
//
// Returns:
//   - longDesc: Everything before the marker line, trimmed
//   - examples: Everything after the marker line, trimmed
//   - err: If the marker is missing
func parseTemplateResult(templateResult string) (longDesc, examples string, err error) {
	const examplesMarker = "## Examples"

	markerIndex := strings.Index(templateResult, examplesMarker)
	if markerIndex == -1 {
		return "", "", errors.New("CLI help template has invalid format - missing '## Examples' section")
	}

	lineStart := strings.LastIndex(templateResult[:markerIndex], "\n") + 1

	lineEnd := strings.Index(templateResult[markerIndex:], "\n")
	if lineEnd == -1 {
		lineEnd = len(templateResult)
	} else {
		lineEnd += markerIndex
	}

	longDesc = strings.TrimSpace(templateResult[:lineStart])
	examples = strings.TrimSpace(templateResult[lineEnd:])
	return longDesc, examples, nil
}

// extractFlagNames returns the "--"-prefixed names of the instructions, config and help flags.
// Missing flags fall back to their default names.
func extractFlagNames(rootCmd *cobra.Command) (instructionsFlagName, configFlagName, helpFlagName string) {
	instructionsFlagName = "--instructions"
	if f := rootCmd.PersistentFlags().Lookup("instructions"); f != nil {
		instructionsFlagName = "--" + f.Name
	}

	configFlagName = "--config"
	if f := rootCmd.PersistentFlags().Lookup("config"); f != nil {
		configFlagName = "--" + f.Name
	}

	helpFlagName = "--help"
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		helpFlagName = "--" + f.Name
	}

	return instructionsFlagName, configFlagName, helpFlagName
}

// startMCPServer loads the configuration, builds the server and serves the
// protocol on stdio until ctx is cancelled or stdin reaches EOF.
//
// Returns:
//   - nil: When stdin is closed or ctx is cancelled
//   - error: Configuration loading, invalid log level, server building, or I/O errors
func (cf *CLIFramework) startMCPServer(ctx context.Context) error {
	config, err := loadConfig(cf.configFile)
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}
	if err := cf.log.SetLevel(config.Log.Level); err != nil {
		return errors.Wrapf(err, "invalid log.level %q", config.Log.Level)
	}

	mcpServer, err := NewServerBuilder().
		WithConfig(config).
		WithEmbed(cf.embed).
		WithVersion(cf.version).
		WithLogger(cf.log).
		WithTools(cf.tools...).
		WithResources(cf.resources...).
		WithInstructions(cf.instructions).
		Build()
	if err != nil {
		return errors.Wrap(err, "failed to build MCP server")
	}

	stdioServer := server.NewStdioServer(mcpServer)
	stdioServer.SetErrorLogger(cf.log.StdLog())

	cf.log.With("version", cf.version, "maxDepth", config.Defaults.MaxDepth, "maxInputSize", config.Defaults.MaxInputSize).
		Printf("%s MCP server started", serverName)

	err = stdioServer.Listen(ctx, cf.stdin, cf.stdout)
	if errors.Is(err, context.Canceled) {
		cf.log.Printf("shutting down: %v", err)
		return nil
	}
	return err
}

// createRootCommandRunE creates the RunE function for the root command.
// showInstructions is read when the command runs, after flag parsing.
func (cf *CLIFramework) createRootCommandRunE(showInstructions *bool, exeName string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return errors.Errorf("unexpected arguments: %s for %q", strings.Join(args, " "), exeName)
		}
		if *showInstructions {
			_, err := fmt.Fprint(cf.stdout, cf.instructions)
			return err
		}
		return cf.startMCPServer(cmd.Context())
	}
}
