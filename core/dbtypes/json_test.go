package dbtypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONMarshal(t *testing.T) {
	type doc struct {
		Settings JSON `json:"settings"`
	}

	out, err := json.Marshal(doc{Settings: JSON(`{"units":"imperial"}`)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"settings":{"units":"imperial"}}`, string(out))

	out, err = json.Marshal(doc{})
	require.NoError(t, err)
	assert.JSONEq(t, `{"settings":null}`, string(out))
}

func TestJSONUnmarshal(t *testing.T) {
	var d struct {
		Address JSON `json:"address"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"address":{"city":"Austin","zip":"78701"}}`), &d))
	assert.JSONEq(t, `{"city":"Austin","zip":"78701"}`, string(d.Address))

	require.NoError(t, json.Unmarshal([]byte(`{"address":null}`), &d))
	assert.True(t, d.Address.IsNull())
}

func TestJSONScanValue(t *testing.T) {
	var j JSON
	require.NoError(t, j.Scan([]byte(`[1,2]`)))
	assert.Equal(t, `[1,2]`, string(j))

	require.NoError(t, j.Scan(`{"a":true}`))
	assert.Equal(t, `{"a":true}`, string(j))

	require.NoError(t, j.Scan(nil))
	assert.True(t, j.IsNull())

	assert.Error(t, j.Scan(42))

	v, err := JSON(`{"a":1}`).Value()
	require.NoError(t, err)
	assert.Equal(t, `{"a":1}`, v)

	v, err = JSON(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	_, err = JSON(`{broken`).Value()
	assert.Error(t, err)
}

func TestJSONDecode(t *testing.T) {
	j, err := MarshalToJSON(map[string]int{"crew": 12})
	require.NoError(t, err)

	var got map[string]int
	require.NoError(t, j.Decode(&got))
	assert.Equal(t, 12, got["crew"])

	var untouched map[string]int
	require.NoError(t, JSON(nil).Decode(&untouched))
	assert.Nil(t, untouched)
}
