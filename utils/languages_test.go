package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLanguageID(t *testing.T) {
	assert.Equal(t, 71, LanguageID("python"))
	assert.Equal(t, 71, LanguageID("Python3"))
	assert.Equal(t, 54, LanguageID("C++"))
	assert.Equal(t, 60, LanguageID("go"))
	assert.Equal(t, 63, LanguageID("JS"))

	// unknown languages fall back to Python
	assert.Equal(t, 71, LanguageID("brainfuck"))
}

func TestIsSupportedLanguage(t *testing.T) {
	assert.True(t, IsSupportedLanguage("python"))
	assert.True(t, IsSupportedLanguage("Rust"))
	assert.False(t, IsSupportedLanguage("brainfuck"))
	assert.False(t, IsSupportedLanguage(""))
}
