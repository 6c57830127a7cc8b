package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewObjectName(t *testing.T) {
	a := NewObjectName("voice", ".mp3")
	b := NewObjectName("voice", "mp3")

	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "voice-"))
	assert.True(t, strings.HasSuffix(b, ".mp3"))
	assert.True(t, generated(a, "voice"))
	assert.False(t, generated(a, "other"))

	assert.True(t, generated(NewObjectName("voice", ""), "voice"))
}

func TestGenerated(t *testing.T) {
	assert.False(t, generated("voice-readme.mp3", "voice"))
	assert.False(t, generated("sentence.mp3", "voice"))
	assert.False(t, generated("voice-", "voice"))
}

func TestValidName(t *testing.T) {
	for name, want := range map[string]bool{
		"voice-1.mp3":    true,
		"sentence.mp3":   true,
		"":               false,
		".":              false,
		"..":             false,
		".hidden":        false,
		"../etc/passwd":  false,
		"sub/file.mp3":   false,
		`sub\file.mp3`:   false,
	} {
		assert.Equal(t, want, validName(name), name)
	}
}
