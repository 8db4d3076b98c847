// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"io"
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface shared by the certificate viewer binaries.
//
// The CLI writes human-readable lines; the [MCP] server writes structured
// JSON records to a side channel so stdio stays reserved for the protocol.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a CLI logger writing to stderr without timestamps,
// leaving stdout to the rendered certificate records.
func NewCLILogger() *CLILogger {
	return &CLILogger{logger: log.New(os.Stderr, "", 0)}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// swapWriter is an io.Writer whose destination can be replaced while zap
// cores hold a reference to it.
type swapWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *swapWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

func (s *swapWriter) set(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	s.mu.Lock()
	s.w = w
	s.mu.Unlock()
}

// MCPLogger implements Logger for [MCP] server mode on top of [zap].
//
// Each call writes one JSON object with the keys "level" and "message".
// Silent loggers drop everything, which keeps stdio clean when the server
// runs as a subprocess.
//
// MCPLogger is safe for concurrent use by multiple goroutines.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
// [zap]: https://pkg.go.dev/go.uber.org/zap
type MCPLogger struct {
	out   *swapWriter
	level zap.AtomicLevel
	sugar *zap.SugaredLogger
}

// NewMCPLogger creates a new [MCP] logger writing to writer at info level.
// A nil writer discards output.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func NewMCPLogger(writer io.Writer, silent bool) *MCPLogger {
	m := &MCPLogger{
		out:   &swapWriter{},
		level: zap.NewAtomicLevelAt(zap.InfoLevel),
	}
	m.out.set(writer)

	if silent {
		m.sugar = zap.NewNop().Sugar()
		return m
	}

	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		LevelKey:       "level",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	})
	core := zapcore.NewCore(enc, zapcore.AddSync(m.out), m.level)
	m.sugar = zap.New(core).Sugar()
	return m
}

// SetLevel changes the minimum level ("debug", "info", "warn", "error").
func (m *MCPLogger) SetLevel(level string) error {
	return m.level.UnmarshalText([]byte(level))
}

// Printf logs a formatted message at info level.
func (m *MCPLogger) Printf(format string, v ...any) { m.sugar.Infof(format, v...) }

// Println logs its operands at info level, formatted with fmt.Sprint.
func (m *MCPLogger) Println(v ...any) { m.sugar.Info(v...) }

// Debugf logs a formatted message at debug level.
func (m *MCPLogger) Debugf(format string, v ...any) { m.sugar.Debugf(format, v...) }

// Warnf logs a formatted message at warn level.
func (m *MCPLogger) Warnf(format string, v ...any) { m.sugar.Warnf(format, v...) }

// With returns a logger that adds the given key-value pairs to every record
// and shares the output and level of m.
func (m *MCPLogger) With(keysAndValues ...any) *MCPLogger {
	return &MCPLogger{out: m.out, level: m.level, sugar: m.sugar.With(keysAndValues...)}
}

// SetOutput sets the output destination for the MCP logger. A nil writer
// discards output.
func (m *MCPLogger) SetOutput(w io.Writer) { m.out.set(w) }

// StdLog returns a standard library logger that writes through m at error
// level, for components that only accept a *log.Logger.
func (m *MCPLogger) StdLog() *log.Logger {
	l, err := zap.NewStdLogAt(m.sugar.Desugar(), zap.ErrorLevel)
	if err != nil {
		return zap.NewStdLog(m.sugar.Desugar())
	}
	return l
}
