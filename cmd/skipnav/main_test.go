package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunNumericQuery(t *testing.T) {
	args := []string{"-numeric", "-query", "456", "300", "600", "900", "1000", "700", "400", "100", "200", "500", "800"}

	var out bytes.Buffer
	require.NoError(t, run(args, nil, &out))

	text := out.String()
	assert.Contains(t, text, "floor(456) = 400")
	assert.Contains(t, text, "ceiling(456) = 500")
	assert.Contains(t, text, "higher(456) = 500")
	assert.Contains(t, text, "lower(456) = 400")
	assert.Contains(t, text, "[100,200,300,400,500,600,700,800,900,1000]")
	assert.Contains(t, text, "size=10")
}

func TestRunReadsKeysFromStdinAndRemoves(t *testing.T) {
	stdin := strings.NewReader("pear\napple\n\nfig\n")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-remove", "fig", "-lanes=false"}, stdin, &out))

	text := out.String()
	assert.Contains(t, text, `["apple","pear"]`)
	assert.Contains(t, text, "size=2")
}

func TestRunQueryBeyondEveryKeyIsAbsent(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-numeric", "-query", "99999", "1", "2"}, nil, &out))

	assert.Contains(t, out.String(), "ceiling(99999) = absent")
	assert.Contains(t, out.String(), "floor(99999) = 2")
}

func TestRunRejectsMalformedNumericKey(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-numeric", "12", "x1"}, nil, &out)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `parsing key "x1"`)
}
