package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateForLog(t *testing.T) {
	assert.Equal(t, "short", TruncateForLog("short", 10))
	assert.Equal(t, "abc...", TruncateForLog("abcdef", 3))
	assert.Equal(t, "", TruncateForLog("anything", 0))
	assert.Equal(t, "trimmed", TruncateForLog("  trimmed  ", 10))
	assert.Equal(t, "héllo...", TruncateForLog("héllo wörld", 5))
}
