// Package pingcheck validates the Glean server event log lines emitted by the glean package
package pingcheck

import (
	"bufio"
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gleanserver/glean-events/internal/glean"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	schemaBaseURL = "https://glean-events.local/schemas/"

	schemaCommon = "common.1.schema.json"
	schemaMozlog = "mozlog.1.schema.json"

	maxLineSize = 1024 * 1024
)

var (
	// ErrSkipped is returned for lines which are not glean server events
	ErrSkipped = errors.New("not a glean server event")

	payloadSchemas = map[string]string{
		glean.DocumentTypeEvents:         "events.1.schema.json",
		glean.DocumentTypeMastodonAction: "mastodon-action.1.schema.json",
	}
)

// Validator validates log lines against the bundled schemas
type Validator struct {
	mozlog   *jsonschema.Schema
	payloads map[string]*jsonschema.Schema
}

// NewValidator compiles the bundled schemas into a new Validator
func NewValidator() (*Validator, error) {
	c := jsonschema.NewCompiler()
	c.Draft = jsonschema.Draft7

	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		data, err := schemaFS.ReadFile("schemas/" + entry.Name())
		if err != nil {
			return nil, err
		}
		if err := c.AddResource(schemaBaseURL+entry.Name(), bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to load schema %s: %w", entry.Name(), err)
		}
	}

	compile := func(name string) (*jsonschema.Schema, error) {
		s, err := c.Compile(schemaBaseURL + name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		return s, nil
	}

	mozlog, err := compile(schemaMozlog)
	if err != nil {
		return nil, err
	}

	v := Validator{mozlog: mozlog, payloads: make(map[string]*jsonschema.Schema, len(payloadSchemas))}
	for documentType, name := range payloadSchemas {
		s, err := compile(name)
		if err != nil {
			return nil, err
		}
		v.payloads[documentType] = s
	}
	return &v, nil
}

// Result is the validation result of a single log line
type Result struct {
	Line         int
	DocumentType string
	DocumentID   string
	Err          error
}

// Valid reports whether the line passed validation
func (r Result) Valid() bool { return r.Err == nil }

// ValidateLine validates a single log line
// Lines that are not JSON objects tagged as glean server events return ErrSkipped
func (v *Validator) ValidateLine(data []byte) (Result, error) {
	var line map[string]interface{}
	if err := json.Unmarshal(data, &line); err != nil {
		return Result{}, ErrSkipped
	}
	if t, _ := line["Type"].(string); t != glean.MozlogType {
		return Result{}, ErrSkipped
	}

	var result Result
	if fields, ok := line["Fields"].(map[string]interface{}); ok {
		result.DocumentType, _ = fields["document_type"].(string)
		result.DocumentID, _ = fields["document_id"].(string)
	}

	if err := v.mozlog.Validate(line); err != nil {
		result.Err = fmt.Errorf("invalid log line: %w", err)
		return result, nil
	}

	// the mozlog schema guarantees the payload is a string and the document type is known
	payload := line["Fields"].(map[string]interface{})["payload"].(string)

	var doc interface{}
	if err := json.Unmarshal([]byte(payload), &doc); err != nil {
		result.Err = fmt.Errorf("invalid payload: %w", err)
		return result, nil
	}

	if err := v.payloads[result.DocumentType].Validate(doc); err != nil {
		result.Err = fmt.Errorf("invalid %s payload: %w", result.DocumentType, err)
	}
	return result, nil
}

// Summary is the outcome of validating a stream of log lines
type Summary struct {
	Checked int
	Invalid int
	Skipped int
}

// ValidateStream validates each line read from r, calling report for every glean line
func (v *Validator) ValidateStream(r io.Reader, report func(result Result)) (Summary, error) {
	var summary Summary

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for n := 1; scanner.Scan(); n++ {
		if len(bytes.TrimSpace(scanner.Bytes())) == 0 {
			continue
		}

		result, err := v.ValidateLine(scanner.Bytes())
		if err == ErrSkipped {
			summary.Skipped++
			continue
		}
		result.Line = n

		summary.Checked++
		if !result.Valid() {
			summary.Invalid++
		}
		if report != nil {
			report(result)
		}
	}

	if err := scanner.Err(); err != nil {
		return summary, fmt.Errorf("failed to read log lines: %w", err)
	}
	return summary, nil
}
