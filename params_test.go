package twitterbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractParams(t *testing.T) {
	spec := ParamsSpec{
		{Name: "mode", Values: []string{"sketch", "default"}},
		{Name: "color", Values: []string{"black", "white"}},
	}

	params := ExtractParams("I want a black sketch", spec)
	assert.Equal(t, map[string]string{"mode": "sketch", "color": "black"}, params)
}

func TestExtractParamsNoMatch(t *testing.T) {
	params := ExtractParams("no matching keywords", ParamsSpec{{Name: "mode", Values: []string{"sketch"}}})
	assert.Empty(t, params)
}

func TestExtractParamsFirstValueWins(t *testing.T) {
	spec := ParamsSpec{{Name: "color", Values: []string{"black", "white"}}}
	params := ExtractParams("white on black", spec)
	assert.Equal(t, "black", params["color"])
}

func TestExtractParamsCaseInsensitive(t *testing.T) {
	spec := ParamsSpec{{Name: "mode", Values: []string{"Sketch"}}}
	params := ExtractParams("MAKE ME A SKETCH", spec)
	assert.Equal(t, "Sketch", params["mode"])
}

func TestValidateInput(t *testing.T) {
	assert.True(t, ValidateInput("please make tweets cloud now", []string{"make tweets cloud"}))
	assert.True(t, ValidateInput("Make Tweets Cloud!", []string{"nope", "make tweets cloud"}))
	assert.False(t, ValidateInput("just saying hi", []string{"make tweets cloud"}))
	assert.False(t, ValidateInput("anything", nil))
}
