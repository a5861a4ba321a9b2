package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyvalsToFields(t *testing.T) {
	fields := keyvalsToFields("entry", 1, "next", "2026-01-01", "dangling")
	assert.Len(t, fields, 2)
	assert.Equal(t, "entry", fields[0].Key)
	assert.Equal(t, "next", fields[1].Key)

	fields = keyvalsToFields(42, "not a key")
	assert.Empty(t, fields)
}
