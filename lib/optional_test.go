package lib

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalDistinguishesAbsentFromNull(t *testing.T) {
	type patch struct {
		Price Optional[float64] `json:"precio"`
	}

	var absent patch
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.Price.Set)

	var null patch
	require.NoError(t, json.Unmarshal([]byte(`{"precio": null}`), &null))
	assert.True(t, null.Price.Set)
	assert.False(t, null.Price.Valid)
	assert.Nil(t, null.Price.Ptr())

	var value patch
	require.NoError(t, json.Unmarshal([]byte(`{"precio": 1250.5}`), &value))
	assert.True(t, value.Price.Set)
	assert.True(t, value.Price.Valid)
	require.NotNil(t, value.Price.Ptr())
	assert.Equal(t, 1250.5, *value.Price.Ptr())
}

func TestOptionalMarshal(t *testing.T) {
	null := Optional[string]{Set: true}
	raw, err := json.Marshal(null)
	require.NoError(t, err)
	assert.Equal(t, "null", string(raw))

	val := Optional[string]{Set: true, Valid: true, Value: "x"}
	raw, err = json.Marshal(val)
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(raw))
}
