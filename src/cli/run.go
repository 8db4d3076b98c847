// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/ber"
	x509certs "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/certs"
	x509viewer "github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/viewer"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/logger"
)

// stdinName is the input argument that reads text from standard input.
const stdinName = "-"

// result holds what one input produced.
type result struct {
	label string
	recs  []*x509viewer.Record
	tree  *ber.Node
	err   error
}

type runner struct {
	cfg    Config
	log    logger.Logger
	parser *x509viewer.Parser
	stdin  io.Reader
	stdout io.Writer
}

func newRunner(cfg Config, log logger.Logger, stdin io.Reader, stdout io.Writer) *runner {
	return &runner{
		cfg: cfg,
		log: log,
		parser: x509viewer.New(
			x509viewer.WithMaxDepth(cfg.MaxDepth),
			x509viewer.WithMaxInputSize(cfg.MaxSize),
		),
		stdin:  stdin,
		stdout: stdout,
	}
}

// run parses inputs with at most cfg.Workers goroutines, writes the results
// in input order and reports failed inputs through ErrInputsFailed.
func (r *runner) run(ctx context.Context, inputs []string) error {
	results, err := r.process(ctx, inputs)
	if err != nil {
		return err
	}

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			r.log.Printf("%s: %v", res.label, res.err)
			continue
		}
		for _, rec := range res.recs {
			if rec.Strategy == x509viewer.StrategyManual {
				r.log.Printf("%s: decoded with the %s strategy", res.label, rec.Strategy)
			}
		}
	}

	if err := r.write(results); err != nil {
		return err
	}
	if failed > 0 {
		return errors.Wrapf(ErrInputsFailed, "%d of %d", failed, len(inputs))
	}
	return nil
}

func (r *runner) process(ctx context.Context, inputs []string) ([]result, error) {
	results := make([]result, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.load(input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *runner) load(input string) result {
	res := result{label: input}

	src, text, err := r.open(input)
	if err != nil {
		res.err = err
		return res
	}
	defer src.Close()

	switch {
	case r.cfg.Format == FormatASN1:
		res.tree, res.err = r.parser.DecodeReader(src, text)
	case r.cfg.Bundle:
		res.recs, res.err = r.parser.ParseBundle(src, text)
	default:
		var rec *x509viewer.Record
		if rec, res.err = r.parser.ParseReader(src, text); res.err == nil {
			res.recs = []*x509viewer.Record{rec}
		}
	}
	return res
}

// open returns the reader for input and whether its content is text.
func (r *runner) open(input string) (io.ReadCloser, bool, error) {
	if input == stdinName {
		return io.NopCloser(r.stdin), true, nil
	}
	f, err := os.Open(input)
	if err != nil {
		return nil, false, errors.Wrap(err, "opening input")
	}
	return f, x509certs.IsTextFile(input), nil
}

// write renders the successful results to stdout or cfg.Output.
func (r *runner) write(results []result) (err error) {
	out := r.stdout
	if r.cfg.Output != "" {
		f, cerr := os.Create(r.cfg.Output)
		if cerr != nil {
			return errors.Wrap(cerr, "creating output file")
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = errors.Wrap(cerr, "closing output file")
			}
		}()
		out = f
	}

	rendered, err := r.render(results)
	if err != nil {
		return err
	}
	_, err = io.WriteString(out, rendered)
	return errors.Wrap(err, "writing output")
}

// render joins the output of every record. A single record is rendered on
// its own; several records are labelled with their input, or form a JSON
// array or a YAML stream.
func (r *runner) render(results []result) (string, error) {
	type item struct {
		label string
		rec   *x509viewer.Record
		tree  *ber.Node
	}

	var items []item
	for _, res := range results {
		if res.err != nil {
			continue
		}
		if res.tree != nil {
			items = append(items, item{label: res.label, tree: res.tree})
		}
		for i, rec := range res.recs {
			label := res.label
			if len(res.recs) > 1 {
				label = fmt.Sprintf("%s[%d]", res.label, i)
			}
			items = append(items, item{label: label, rec: rec})
		}
	}
	if len(items) == 0 {
		return "", nil
	}

	switch r.cfg.Format {
	case string(x509viewer.FormatJSON):
		if len(items) == 1 {
			s, err := x509viewer.RenderJSON(items[0].rec)
			return s + "\n", err
		}
		recs := make([]*x509viewer.Record, 0, len(items))
		for _, it := range items {
			recs = append(recs, it.rec)
		}
		out, err := json.MarshalIndent(recs, "", "  ")
		if err != nil {
			return "", errors.Wrap(err, "encoding records as JSON")
		}
		return string(out) + "\n", nil

	case string(x509viewer.FormatYAML):
		docs := make([]string, 0, len(items))
		for _, it := range items {
			s, err := x509viewer.RenderYAML(it.rec)
			if err != nil {
				return "", err
			}
			docs = append(docs, s)
		}
		return strings.Join(docs, "---\n"), nil
	}

	var sb strings.Builder
	for i, it := range items {
		if len(items) > 1 {
			if i > 0 {
				sb.WriteByte('\n')
			}
			fmt.Fprintf(&sb, "==> %s <==\n", it.label)
		}
		if it.tree != nil {
			sb.WriteString(ber.Dump(it.tree))
			continue
		}
		s, err := x509viewer.Render(it.rec, x509viewer.Format(r.cfg.Format))
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}
