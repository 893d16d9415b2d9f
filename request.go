package pairfind

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// RequestSchema is the JSON schema a request object must satisfy.
const RequestSchema = `{
  "type": "object",
  "properties": {
    "nums": {
      "type": "array",
      "items": {"type": "integer"}
    },
    "target": {"type": "integer"}
  },
  "required": ["nums", "target"]
}`

// Request is the JSON form of a solve invocation.
type Request struct {
	Nums   []int `json:"nums"`
	Target int   `json:"target"`
}

// DecodeRequest reads a JSON request object from r, validates it against
// RequestSchema and returns the sequence and target.
func DecodeRequest(r io.Reader) ([]int, int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("read request: %w", err)
	}

	if err := validateRequestSchema(data); err != nil {
		return nil, 0, err
	}

	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrRequestSyntax, err)
	}

	return req.Nums, req.Target, nil
}

func validateRequestSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(RequestSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRequestSyntax, err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return fmt.Errorf("%w: %s", ErrRequestSchemaInvalid, strings.Join(errs, "; "))
}
