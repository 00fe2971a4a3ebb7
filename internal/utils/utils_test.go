package utils

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()
	assert.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestClipboard_Copy(t *testing.T) {
	var got string
	c := &Clipboard{write: func(s string) error {
		got = s
		return nil
	}}

	require.NoError(t, c.Copy("123456"))
	assert.Equal(t, "123456", got)

	failing := &Clipboard{write: func(string) error { return errors.New("no xclip") }}
	err := failing.Copy("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy to clipboard")
}
