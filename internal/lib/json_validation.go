package lib

import (
	"context"
	"encoding/json"

	"github.com/qri-io/jsonschema"
)

// ValidateJSON validates a JSON raw message against a given JSON schema.
// It returns a list of validation errors if the JSON is invalid.
func ValidateJSON(content json.RawMessage, schemaString string) ([]jsonschema.KeyError, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(schemaString), rs); err != nil {
		return nil, err
	}

	return rs.ValidateBytes(context.Background(), content)
}

// CreatePostSchema is the schema for the create-post payload. The anyOf
// branch enforces the precondition that at least one of content and image is
// present: a post with neither is rejected before construction.
func CreatePostSchema() string {
	return `{
		"type": "object",
		"properties": {
			"content": {"type": "string", "minLength": 1},
			"image": {"type": "string", "minLength": 1}
		},
		"anyOf": [
			{"required": ["content"]},
			{"required": ["image"]}
		]
	}`
}

// UpdatePostSchema is the schema for the edit-post payload. Both fields are
// optional: an edit may change just the text, just the image, or both.
func UpdatePostSchema() string {
	return `{
		"type": "object",
		"properties": {
			"content": {"type": "string", "minLength": 1},
			"image": {"type": "string", "minLength": 1}
		}
	}`
}

// CreateCommentSchema is the schema for the comment payload.
func CreateCommentSchema() string {
	return `{
		"type": "object",
		"properties": {
			"content": {"type": "string", "minLength": 1}
		},
		"required": ["content"]
	}`
}
