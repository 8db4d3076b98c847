// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/helper/gc"
	"github.com/H0llyW00dzZ/x509-cert-viewer/src/internal/x509/oids"
)

// Format selects how a [Record] is rendered.
type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned by ParseFormat and Render for unsupported formats.
var ErrUnknownFormat = errors.New("x509viewer: unknown output format")

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatTable, FormatJSON, FormatYAML}

// ParseFormat converts a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownFormat, "%q", s)
}

// Render renders rec in the given format.
func Render(rec *Record, format Format) (string, error) {
	switch format {
	case FormatText:
		return RenderText(rec), nil
	case FormatTable:
		return RenderTable(rec)
	case FormatJSON:
		return RenderJSON(rec)
	case FormatYAML:
		return RenderYAML(rec)
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "%q", format)
	}
}

// RenderText renders rec as aligned, human-readable text.
func RenderText(rec *Record) string {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	line := func(indent int, label, value string) {
		fmt.Fprintf(buf, "%s%-*s %s\n", strings.Repeat(" ", indent), 22-indent, label+":", value)
	}

	line(0, "Version", rec.Version)
	line(0, "Serial Number", rec.SerialNumber)
	line(0, "Signature Algorithm", rec.SignatureAlgorithm)
	line(0, "Issuer", FormatDN(rec.Issuer))
	line(0, "Subject", FormatDN(rec.Subject))
	line(0, "Valid From", rec.ValidFrom.Format(time.RFC3339))
	line(0, "Valid To", rec.ValidTo.Format(time.RFC3339))

	buf.WriteString("Public Key:\n")
	for _, kv := range publicKeyRows(rec.PublicKeyInfo) {
		line(2, kv[0], kv[1])
	}

	buf.WriteString("Extensions:\n")
	if len(rec.Extensions) == 0 {
		buf.WriteString("  none\n")
	}
	for _, ext := range rec.Extensions {
		buf.WriteString("  " + extensionTitle(ext) + ":\n")
		for _, l := range strings.Split(ext.Value, "\n") {
			buf.WriteString("    " + l + "\n")
		}
	}

	buf.WriteString("Fingerprints:\n")
	line(2, "MD5", rec.Fingerprints.MD5)
	line(2, "SHA-1", rec.Fingerprints.SHA1)
	line(2, "SHA-256", rec.Fingerprints.SHA256)
	line(0, "Strategy", string(rec.Strategy))

	return buf.String()
}

// RenderTable renders rec as a two-column markdown table.
func RenderTable(rec *Record) (string, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	rows := [][]string{
		{"Version", rec.Version},
		{"Serial Number", rec.SerialNumber},
		{"Signature Algorithm", rec.SignatureAlgorithm},
		{"Issuer", FormatDN(rec.Issuer)},
		{"Subject", FormatDN(rec.Subject)},
		{"Valid From", rec.ValidFrom.Format(time.RFC3339)},
		{"Valid To", rec.ValidTo.Format(time.RFC3339)},
	}
	for _, kv := range publicKeyRows(rec.PublicKeyInfo) {
		rows = append(rows, []string{"Public Key " + kv[0], kv[1]})
	}
	for _, ext := range rec.Extensions {
		rows = append(rows, []string{extensionTitle(ext), strings.ReplaceAll(ext.Value, "\n", "<br>")})
	}
	rows = append(rows,
		[]string{"MD5", rec.Fingerprints.MD5},
		[]string{"SHA-1", rec.Fingerprints.SHA1},
		[]string{"SHA-256", rec.Fingerprints.SHA256},
		[]string{"Strategy", string(rec.Strategy)},
	)

	table := tablewriter.NewTable(buf,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithRowAutoWrap(tw.WrapNone),
	)
	table.Header([]string{"Field", "Value"})
	if err := table.Bulk(rows); err != nil {
		return "", errors.Wrap(err, "building table")
	}
	if err := table.Render(); err != nil {
		return "", errors.Wrap(err, "rendering table")
	}

	return buf.String(), nil
}

// RenderJSON renders rec as indented JSON.
func RenderJSON(rec *Record) (string, error) {
	out, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding record as JSON")
	}
	return string(out), nil
}

// RenderYAML renders rec as YAML.
func RenderYAML(rec *Record) (string, error) {
	buf := gc.Default.Get()
	defer func() {
		buf.Reset()
		gc.Default.Put(buf)
	}()

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(rec); err != nil {
		return "", errors.Wrap(err, "encoding record as YAML")
	}
	if err := enc.Close(); err != nil {
		return "", errors.Wrap(err, "encoding record as YAML")
	}
	return buf.String(), nil
}

func extensionTitle(ext Extension) string {
	if ext.Critical {
		return ext.Name + " (critical)"
	}
	return ext.Name
}

// publicKeyRows lists the key fields present in pk. An algorithm left as a
// raw OID gets its registry label appended when one exists.
func publicKeyRows(pk PublicKeyInfo) [][2]string {
	algorithm := pk.Algorithm
	if label, ok := oids.LookupPublicKeyAlgorithm(algorithm); ok {
		algorithm = fmt.Sprintf("%s (%s)", algorithm, label)
	}
	rows := [][2]string{
		{"Algorithm", algorithm},
		{"Size", pk.Size},
	}
	if pk.Curve != "" {
		rows = append(rows, [2]string{"Curve", pk.Curve})
	}
	if pk.Exponent != 0 {
		rows = append(rows, [2]string{"Exponent", fmt.Sprint(pk.Exponent)})
	}
	if pk.Modulus != "" {
		rows = append(rows, [2]string{"Modulus", pk.Modulus})
	}
	if pk.PublicKeyHex != "" {
		rows = append(rows, [2]string{"Public Key", pk.PublicKeyHex})
	}
	return rows
}
