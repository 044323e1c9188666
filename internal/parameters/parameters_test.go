package parameters

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewFromConfigString(t *testing.T) {
	params := NewFromConfigString(" width=9, height = 11,quiet,,expr=a=b ")
	assert.Equal(t, Params{"width": "9", "height": "11", "quiet": "", "expr": "a=b"}, params)
	assert.Len(t, NewFromConfigString(""), 0)
}

func TestGetParamOr(t *testing.T) {
	params := NewFromConfigString("width=9,empty=0.25,quiet,name=go,verbose=false,bad=x")

	width, err := GetParamOr(params, "width", 19)
	require.NoError(t, err)
	assert.Equal(t, 9, width)

	height, err := GetParamOr(params, "height", 19)
	require.NoError(t, err)
	assert.Equal(t, 19, height)

	empty, err := GetParamOr(params, "empty", 0.5)
	require.NoError(t, err)
	assert.Equal(t, 0.25, empty)

	empty32, err := GetParamOr(params, "empty", float32(0.5))
	require.NoError(t, err)
	assert.Equal(t, float32(0.25), empty32)

	quiet, err := GetParamOr(params, "quiet", false)
	require.NoError(t, err)
	assert.True(t, quiet)

	verbose, err := GetParamOr(params, "verbose", true)
	require.NoError(t, err)
	assert.False(t, verbose)

	name, err := GetParamOr(params, "name", "")
	require.NoError(t, err)
	assert.Equal(t, "go", name)

	_, err = GetParamOr(params, "bad", 0)
	assert.Error(t, err)
	_, err = GetParamOr(params, "bad", 0.0)
	assert.Error(t, err)
	_, err = GetParamOr(params, "bad", false)
	assert.Error(t, err)
}

func TestPopParamOr(t *testing.T) {
	params := NewFromConfigString("width=9,height=7,seed=x")
	width, err := PopParamOr(params, "width", 19)
	require.NoError(t, err)
	assert.Equal(t, 9, width)
	assert.NotContains(t, params, "width")

	// Failed parsing keeps the key.
	_, err = PopParamOr(params, "seed", 0)
	require.Error(t, err)
	assert.Contains(t, params, "seed")

	err = CheckAllConsumed(params)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"height", "seed"`)

	_, _ = PopParamOr(params, "height", 0)
	delete(params, "seed")
	assert.NoError(t, CheckAllConsumed(params))
}
