// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509viewer

import (
	_ "embed"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

// RecordSchema is the JSON schema of a [Record] rendered with RenderJSON.
//
//go:embed record.schema.json
var RecordSchema string

// ErrSchemaViolation is returned by ValidateJSON when a document does not match RecordSchema.
var ErrSchemaViolation = errors.New("x509viewer: record does not match schema")

var recordSchemaLoader = gojsonschema.NewStringLoader(RecordSchema)

// ValidateJSON checks a JSON document against RecordSchema.
func ValidateJSON(doc []byte) error {
	result, err := gojsonschema.Validate(recordSchemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return errors.Wrap(err, "validating record JSON")
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.String())
	}
	return errors.Wrap(ErrSchemaViolation, strings.Join(msgs, "; "))
}
