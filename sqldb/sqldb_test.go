package sqldb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinSplitList(t *testing.T) {
	assert.Equal(t, "a\nb\nc", joinList([]string{"a", "b", "c"}))
	assert.Equal(t, []string{"a", "b", "c"}, splitList("a\nb\nc"))
	assert.Nil(t, splitList(""))
	assert.Equal(t, "", joinList(nil))
}

func TestClean(t *testing.T) {
	assert.Equal(t, "carmen", clean("  Carmen "))
	assert.Equal(t, "carmen", clean("carmen"))
}

func TestHash(t *testing.T) {
	var h = hash("salt", "password")
	assert.Len(t, h, 64) // hex-encoded sha256
	assert.Equal(t, h, hash("salt", "password"))
	assert.NotEqual(t, h, hash("other", "password"))
	assert.NotEqual(t, h, hash("salt", "other"))
}
