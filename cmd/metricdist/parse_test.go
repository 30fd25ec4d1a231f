package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVector(t *testing.T) {
	v, err := parseVector(" 1, -2.5 ,3e2 ")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -2.5, 300}, v)

	v, err = parseVector("")
	require.NoError(t, err)
	assert.Empty(t, v)

	_, err = parseVector("1,,2")
	assert.Error(t, err)
}

func TestParseBigInt(t *testing.T) {
	n, err := parseBigInt("-123456789012345678901234567890")
	require.NoError(t, err)
	assert.Equal(t, "-123456789012345678901234567890", n.String())

	_, err = parseBigInt("12a")
	assert.Error(t, err)
}
