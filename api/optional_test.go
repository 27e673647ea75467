package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentNullAndValue(t *testing.T) {
	var input UpdateProjectInput
	require.NoError(t, json.Unmarshal([]byte(`{"id":1,"title":"New","demo_link":null}`), &input))

	assert.True(t, input.Title.Present)
	require.NotNil(t, input.Title.Value)
	assert.Equal(t, "New", *input.Title.Value)

	assert.True(t, input.DemoLink.Present, "explicit null is present")
	assert.Nil(t, input.DemoLink.Value)

	assert.False(t, input.Description.Present, "omitted field is absent")
	assert.False(t, input.GithubLink.Present)
}

func TestOptionalUnmarshalTypedValues(t *testing.T) {
	var input UpdateProjectInput
	require.NoError(t, json.Unmarshal([]byte(`{"id":2,"technologies":["Go","React"],"featured":false}`), &input))

	require.True(t, input.Technologies.Present)
	require.NotNil(t, input.Technologies.Value)
	assert.Equal(t, []string{"Go", "React"}, *input.Technologies.Value)

	require.True(t, input.Featured.Present)
	require.NotNil(t, input.Featured.Value)
	assert.False(t, *input.Featured.Value, "false is a value, not an absence")
}

func TestOptionalUnmarshalRejectsWrongType(t *testing.T) {
	var input UpdateSkillInput
	err := json.Unmarshal([]byte(`{"id":1,"proficiency_level":"five"}`), &input)
	assert.Error(t, err)
}

func TestOptionalMarshal(t *testing.T) {
	value := "hello"
	data, err := json.Marshal(Optional[string]{Present: true, Value: &value})
	require.NoError(t, err)
	assert.JSONEq(t, `"hello"`, string(data))

	data, err = json.Marshal(Optional[string]{Present: true})
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}
