package glean

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const (
	documentVersion = "1"
)

// AppInfo identifies the application emitting events
type AppInfo struct {
	ApplicationID  string // the Glean application id, used as the document namespace
	DisplayVersion string // the application version, e.g. 1.2.3
	Channel        string // differentiates prod/beta/staging/devel data
}

func (app AppInfo) validate() error {
	switch {
	case app.ApplicationID == "":
		return ErrMissingField{"application_id"}
	case app.DisplayVersion == "":
		return ErrMissingField{"app_display_version"}
	case app.Channel == "":
		return ErrMissingField{"app_channel"}
	}
	return nil
}

// RequestInfo holds the user request details passed through to ingestion
type RequestInfo struct {
	UserAgent string
	IPAddress string // decoded to geo information and scrubbed at ingestion
}

// Ping is the message structure the ingestion decoder expects
type Ping struct {
	DocumentNamespace string `json:"document_namespace"`
	DocumentType      string `json:"document_type"`
	DocumentVersion   string `json:"document_version"`
	DocumentID        string `json:"document_id"`
	UserAgent         string `json:"user_agent"`
	IPAddress         string `json:"ip_address"`
	Payload           string `json:"payload"`
}

func newPing(app AppInfo, req RequestInfo, documentType string, payload interface{}) (Ping, error) {
	data, err := marshal(payload)
	if err != nil {
		return Ping{}, fmt.Errorf("failed to serialize %s payload: %w", documentType, err)
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return Ping{}, fmt.Errorf("failed to generate document id: %w", err)
	}

	return Ping{
		DocumentNamespace: app.ApplicationID,
		DocumentType:      documentType,
		DocumentVersion:   documentVersion,
		DocumentID:        id.String(),
		UserAgent:         req.UserAgent,
		IPAddress:         req.IPAddress,
		Payload:           string(data),
	}, nil
}

// marshal encodes v as compact JSON without escaping HTML characters
func marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}
