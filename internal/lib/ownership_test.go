package lib

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestIsOwner(t *testing.T) {
	author := uuid.New()

	assert.True(t, IsOwner(author, author))
	assert.False(t, IsOwner(author, uuid.New()))
}
