package lib

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePostSchemaRequiresContentOrImage(t *testing.T) {
	cases := []struct {
		name    string
		payload string
		valid   bool
	}{
		{"content only", `{"content":"hello"}`, true},
		{"image only", `{"image":"aGVsbG8="}`, true},
		{"both", `{"content":"hello","image":"aGVsbG8="}`, true},
		{"neither", `{}`, false},
		{"empty content only", `{"content":""}`, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			keyErrors, err := ValidateJSON(json.RawMessage(c.payload), CreatePostSchema())
			require.NoError(t, err)
			if c.valid {
				assert.Empty(t, keyErrors)
			} else {
				assert.NotEmpty(t, keyErrors)
			}
		})
	}
}

func TestUpdatePostSchemaAllowsPartialPayload(t *testing.T) {
	keyErrors, err := ValidateJSON(json.RawMessage(`{}`), UpdatePostSchema())
	require.NoError(t, err)
	assert.Empty(t, keyErrors)

	keyErrors, err = ValidateJSON(json.RawMessage(`{"content":"edited"}`), UpdatePostSchema())
	require.NoError(t, err)
	assert.Empty(t, keyErrors)
}

func TestCreateCommentSchemaRequiresContent(t *testing.T) {
	keyErrors, err := ValidateJSON(json.RawMessage(`{}`), CreateCommentSchema())
	require.NoError(t, err)
	assert.NotEmpty(t, keyErrors)

	keyErrors, err = ValidateJSON(json.RawMessage(`{"content":"nice!"}`), CreateCommentSchema())
	require.NoError(t, err)
	assert.Empty(t, keyErrors)
}
