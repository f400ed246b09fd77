package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		id       string
		expected Language
		found    bool
	}{
		{"english", English, true},
		{"German", German, true},
		{" japanese ", Japanese, true},
		{"filipino", Filipino, true},
		{"klingon", Language{}, false},
		{"", Language{}, false},
	}

	for _, test := range tests {
		lang, ok := Lookup(test.id)
		assert.Equal(t, test.found, ok, test.id)
		assert.Equal(t, test.expected, lang, test.id)
	}
}

func TestLanguagesIsACopy(t *testing.T) {
	langs := Languages()
	assert.Len(t, langs, 4)
	assert.Equal(t, Default, langs[0])

	langs[0] = German
	assert.Equal(t, English, Languages()[0])
}

func TestIsDefault(t *testing.T) {
	assert.True(t, English.IsDefault())
	assert.False(t, German.IsDefault())
}
