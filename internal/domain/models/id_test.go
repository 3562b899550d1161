package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexIDAcceptsNumberAndString(t *testing.T) {
	var numeric, quoted struct {
		ID FlexID `json:"id"`
	}

	require.NoError(t, json.Unmarshal([]byte(`{"id":1736899200000}`), &numeric))
	require.NoError(t, json.Unmarshal([]byte(`{"id":"1736899200000"}`), &quoted))

	// String-typed and number-typed ids must compare equal after decoding.
	assert.Equal(t, numeric.ID, quoted.ID)
	assert.Equal(t, FlexID(1736899200000), numeric.ID)
}

func TestFlexIDRejectsGarbage(t *testing.T) {
	var out FlexID
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &out))
}

func TestFlexIDMarshalsAsNumber(t *testing.T) {
	raw, err := json.Marshal(FlexID(42))
	require.NoError(t, err)
	assert.Equal(t, "42", string(raw))
}
