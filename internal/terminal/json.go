package terminal

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

const (
	logFieldDoc = "doc"
)

var (
	jsonDocumentFields = []string{logFieldMessage, logFieldDoc}
)

type jsonDocument struct {
	title string
	data  interface{}
}

func (j jsonDocument) Message() (string, error) {
	doc, err := json.MarshalIndent(j.data, "", "  ")
	if err != nil {
		return "", err
	}

	title := color.New(color.Bold).Sprint(j.title)
	return fmt.Sprintf("%s\n%s", title, doc), nil
}

func (j jsonDocument) Payload() ([]string, map[string]interface{}, error) {
	return jsonDocumentFields, map[string]interface{}{
		logFieldMessage: j.title,
		logFieldDoc:     j.data,
	}, nil
}
