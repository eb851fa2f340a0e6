package lua

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexDigest(t *testing.T) {
	// Reference values from RFC 1321.
	assert.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", hexDigest(""))
	assert.Equal(t, "0cc175b9c0f1b6a831c399e269772661", hexDigest("a"))
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72", hexDigest("abc"))
}

func TestRecordDigest(t *testing.T) {
	digest := recordDigest([]string{"alpha", "10", "true"})
	assert.Regexp(t, "^[0-9a-f]{32}$", digest)

	t.Run("ignores field order", func(t *testing.T) {
		assert.Equal(t,
			recordDigest([]string{"b", "a"}),
			recordDigest([]string{"a", "b"}))
	})

	t.Run("normalises decimals", func(t *testing.T) {
		assert.Equal(t,
			recordDigest([]string{"x", "2.5"}),
			recordDigest([]string{"x", "2.50"}))
	})

	t.Run("detects changed cells", func(t *testing.T) {
		assert.NotEqual(t,
			recordDigest([]string{"x", "1"}),
			recordDigest([]string{"x", "2"}))
	})
}

func TestTableDigest(t *testing.T) {
	rows := [][]string{{"a", "1"}, {"b", "2"}, {"c", "3"}}
	reversed := [][]string{{"c", "3"}, {"b", "2"}, {"a", "1"}}

	assert.Equal(t, tableDigest(rows), tableDigest(reversed))
	assert.NotEqual(t, tableDigest(rows), tableDigest(rows[:2]))
	assert.Regexp(t, "^[0-9a-f]{32}$", tableDigest(nil))
}
