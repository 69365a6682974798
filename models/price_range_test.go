package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriceRange(t *testing.T) {
	pr, err := ParsePriceRange("all")
	require.NoError(t, err)
	assert.Nil(t, pr)

	pr, err = ParsePriceRange("500-1000")
	require.NoError(t, err)
	require.NotNil(t, pr)
	assert.Equal(t, 500, pr.Min)
	require.NotNil(t, pr.Max)
	assert.Equal(t, 1000, *pr.Max)
	assert.True(t, pr.Contains(500))
	assert.True(t, pr.Contains(1000))
	assert.False(t, pr.Contains(499))
	assert.False(t, pr.Contains(1001))

	// Open-ended bracket ("1500+").
	pr, err = ParsePriceRange("1500")
	require.NoError(t, err)
	require.NotNil(t, pr)
	assert.Nil(t, pr.Max)
	assert.True(t, pr.Contains(1500))
	assert.True(t, pr.Contains(99999))
	assert.False(t, pr.Contains(1499))
}

func TestParsePriceRangeInvalid(t *testing.T) {
	for _, value := range []string{"", "abc", "abc-def", "-100", "1000-500"} {
		_, err := ParsePriceRange(value)
		assert.Error(t, err, "value %q", value)
	}
}
