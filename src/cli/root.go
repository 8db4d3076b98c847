// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/helper/posix"
	x509viewer "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/viewer"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/logger"
)

// EnvPrefix prefixes the environment variables that override flags.
// Dashes in flag names become underscores, so --max-depth maps to X509VIEW_MAX_DEPTH.
const EnvPrefix = "X509VIEW"

// FormatASN1 renders the generic TLV tree instead of a certificate record.
const FormatASN1 = "asn1"

// Flag names, also used as configuration keys.
const (
	flagConfig   = "config"
	flagFormat   = "format"
	flagMaxDepth = "max-depth"
	flagMaxSize  = "max-size"
	flagBundle   = "bundle"
	flagOutput   = "output"
	flagWorkers  = "workers"
)

var (
	// ErrInputRequired is returned when no input file is given.
	ErrInputRequired = errors.New("cli: at least one input file is required")

	// ErrInputsFailed is returned after all inputs were processed when at least one failed.
	ErrInputsFailed = errors.New("cli: one or more inputs failed")
)

// Config is the effective configuration of one run.
type Config struct {
	Format   string
	MaxDepth int
	MaxSize  int
	Bundle   bool
	Output   string
	Workers  int
}

// Execute builds the root command and runs it with os.Args.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	return NewRootCmd(version, log).ExecuteContext(ctx)
}

// NewRootCmd returns the root command. Progress and failures are reported
// through log; rendered records go to the command's output or --output.
func NewRootCmd(version string, log logger.Logger) *cobra.Command {
	v := viper.New()
	name := posix.ExecutableName("x509-cert-viewer")

	cmd := &cobra.Command{
		Use:   name + " [flags] FILE...",
		Short: "X.509 certificate viewer",
		Long: `Decode X.509 certificates into a readable record.

FILE may be PEM, bare Base64 or bare hex text (.pem, .crt, .cer) or binary DER
(any other extension). Use - to read text from standard input.`,
		Example: fmt.Sprintf(`  %[1]s leaf.pem
  %[1]s --format json a.crt b.der
  %[1]s --bundle --format table chain.pem
  cat leaf.pem | %[1]s -`, name),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return ErrInputRequired
			}
			return nil
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindConfig(v, cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return newRunner(cfg, log, cmd.InOrStdin(), cmd.OutOrStdout()).run(cmd.Context(), args)
		},
	}

	flags := cmd.Flags()
	flags.String(flagConfig, "", "configuration file (YAML, JSON or TOML)")
	flags.StringP(flagFormat, "f", string(x509viewer.FormatText), "output format: text, table, json, yaml or asn1")
	flags.Int(flagMaxDepth, x509viewer.DefaultMaxDepth, "maximum ASN.1 nesting depth")
	flags.Int(flagMaxSize, x509viewer.DefaultMaxInputSize, "maximum input size in bytes")
	flags.BoolP(flagBundle, "b", false, "decode every certificate of a PEM or PKCS#7 bundle")
	flags.StringP(flagOutput, "o", "", "write output to file (default: stdout)")
	flags.IntP(flagWorkers, "w", runtime.GOMAXPROCS(0), "number of inputs parsed concurrently")

	return cmd
}

// bindConfig wires flags, environment and the optional configuration file
// into v. Flags set on the command line take precedence over the environment,
// which takes precedence over the file.
func bindConfig(v *viper.Viper, cmd *cobra.Command) error {
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return errors.Wrap(err, "binding flags")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(flagConfig); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrapf(err, "reading config file %s", path)
		}
	}
	return nil
}

func loadConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		Format:   strings.ToLower(strings.TrimSpace(v.GetString(flagFormat))),
		MaxDepth: v.GetInt(flagMaxDepth),
		MaxSize:  v.GetInt(flagMaxSize),
		Bundle:   v.GetBool(flagBundle),
		Output:   v.GetString(flagOutput),
		Workers:  v.GetInt(flagWorkers),
	}

	if cfg.Format != FormatASN1 {
		if _, err := x509viewer.ParseFormat(cfg.Format); err != nil {
			return Config{}, err
		}
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return cfg, nil
}
