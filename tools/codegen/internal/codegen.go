// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codegen

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"text/template"
)

// Registry holds the loaded OID registry configuration
type Registry struct {
	Tables []TableDefinition `json:"tables"`
	Curves []CurveDefinition `json:"curves"`
}

// TableDefinition represents one OID to label map to be generated
type TableDefinition struct {
	Name    string            `json:"name"`
	Comment string            `json:"comment"`
	Entries []EntryDefinition `json:"entries"`
}

// EntryDefinition represents a single OID and its display label
type EntryDefinition struct {
	OID   string `json:"oid"`
	Label string `json:"label"`
}

// CurveDefinition represents a named elliptic curve
type CurveDefinition struct {
	OID   string `json:"oid"`
	Name  string `json:"name"`
	Alias string `json:"alias,omitempty"`
	Bits  int    `json:"bits"`
}

// getCodegenDir returns the absolute path to the codegen directory
func getCodegenDir() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(currentFile)) // Go up from internal/ to codegen/
}

// getTemplatePath returns the path to a template file
func getTemplatePath(templateName string) string {
	return filepath.Join(getCodegenDir(), "templates", templateName)
}

// getOutputPath returns the path to an output file
func getOutputPath(outputName string) string {
	return filepath.Join(getCodegenDir(), "..", "..", "src", "internal", "x509", "oids", outputName)
}

// getConfigPath returns the path to a configuration file
func getConfigPath(configName string) string {
	return filepath.Join(getCodegenDir(), "config", configName)
}

// loadRegistry loads and validates the registry configuration from a JSON file
func loadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry config from %s: %w", path, err)
	}

	registry := &Registry{}
	if err := json.Unmarshal(data, registry); err != nil {
		return nil, fmt.Errorf("parsing registry config: %w", err)
	}

	if err := validateRegistry(registry); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return registry, nil
}

// validateRegistry validates the loaded configuration
func validateRegistry(registry *Registry) error {
	if err := validateTables(registry.Tables); err != nil {
		return err
	}
	return validateCurves(registry.Curves)
}

// validateTables validates table definitions
func validateTables(tables []TableDefinition) error {
	tableNames := make(map[string]bool)
	for i, table := range tables {
		if table.Name == "" {
			return fmt.Errorf("table %d: Name is required", i)
		}
		if tableNames[table.Name] {
			return fmt.Errorf("table %d: duplicate name '%s'", i, table.Name)
		}
		tableNames[table.Name] = true

		if err := validateEntries(table.Name, table.Entries); err != nil {
			return err
		}
	}
	return nil
}

// validateEntries validates the entries of a single table
func validateEntries(table string, entries []EntryDefinition) error {
	if len(entries) == 0 {
		return fmt.Errorf("table '%s': at least one entry is required", table)
	}

	seen := make(map[string]bool)
	for j, entry := range entries {
		if !validOID(entry.OID) {
			return fmt.Errorf("table '%s' entry %d: invalid OID '%s'", table, j, entry.OID)
		}
		if entry.Label == "" {
			return fmt.Errorf("table '%s' entry %d: Label is required", table, j)
		}
		if seen[entry.OID] {
			return fmt.Errorf("table '%s' entry %d: duplicate OID '%s'", table, j, entry.OID)
		}
		seen[entry.OID] = true
	}
	return nil
}

// validateCurves validates curve definitions
func validateCurves(curves []CurveDefinition) error {
	seen := make(map[string]bool)
	for i, curve := range curves {
		if !validOID(curve.OID) {
			return fmt.Errorf("curve %d: invalid OID '%s'", i, curve.OID)
		}
		if curve.Name == "" {
			return fmt.Errorf("curve %d: Name is required", i)
		}
		if curve.Bits <= 0 {
			return fmt.Errorf("curve %d: Bits must be positive, got %d", i, curve.Bits)
		}
		if seen[curve.OID] {
			return fmt.Errorf("curve %d: duplicate OID '%s'", i, curve.OID)
		}
		seen[curve.OID] = true
	}
	return nil
}

// validOID reports whether s is a dotted-decimal object identifier with at least two arcs
func validOID(s string) bool {
	arcs := strings.Split(s, ".")
	if len(arcs) < 2 {
		return false
	}
	for _, arc := range arcs {
		if arc == "" || (len(arc) > 1 && arc[0] == '0') {
			return false
		}
		if _, err := strconv.ParseUint(arc, 10, 64); err != nil {
			return false
		}
	}
	return arcs[0] == "0" || arcs[0] == "1" || arcs[0] == "2"
}

// GenerateRegistry generates the registry_gen.go file for the oids package
func GenerateRegistry() error {
	registry, err := loadRegistry(getConfigPath("oids.json"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	templatePath := getTemplatePath("registry.go.tmpl")
	outputPath := getOutputPath("registry_gen.go")

	return generateFile(templatePath, outputPath, registry)
}

// generateFile generates a file using a template
func generateFile(templatePath, outputPath string, registry *Registry) error {
	code, err := renderRegistry(templatePath, registry)
	if err != nil {
		return err
	}

	return writeGeneratedFile(outputPath, code)
}

// renderRegistry executes the template and returns the unformatted source
func renderRegistry(templatePath string, registry *Registry) ([]byte, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("parsing template from %s: %w", templatePath, err)
	}

	var code bytes.Buffer

	// Header
	writeHeader(&code)

	code.WriteString("package oids\n")

	// Execute template
	if err := tmpl.Execute(&code, registry); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return code.Bytes(), nil
}

func writeHeader(code *bytes.Buffer) {
	code.WriteString("// Copyright (c) 2025 H0llyW00dzZ All rights reserved.\n")
	code.WriteString("//\n")
	code.WriteString("// By accessing or using this software, you agree to be bound by the terms\n")
	code.WriteString("// of the License Agreement, which you can find at LICENSE files.\n\n")
	code.WriteString("// Code generated by go generate; DO NOT EDIT.\n")
	code.WriteString("// This file is generated from tools/codegen/internal/codegen.go\n\n")
}

func writeGeneratedFile(filename string, content []byte) error {
	// Format the generated code
	formatted, err := format.Source(content)
	if err != nil {
		return fmt.Errorf("formatting code: %w", err)
	}

	// Write to the generated file
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	_, err = writer.Write(formatted)
	if err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing file: %w", err)
	}

	fmt.Printf("Generated %s successfully\n", filename)
	return nil
}
