package dbtypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchDoc struct {
	Name  Patch[string]  `json:"name,omitzero"`
	Notes Patch[*string] `json:"notes,omitzero"`
}

func TestPatchMarshalOmitsUnset(t *testing.T) {
	out, err := json.Marshal(patchDoc{})
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(out))

	out, err = json.Marshal(patchDoc{Name: Set("Phase 2"), Notes: Null[string]()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Phase 2","notes":null}`, string(out))
}

func TestPatchUnmarshalMarksSet(t *testing.T) {
	var d patchDoc
	require.NoError(t, json.Unmarshal([]byte(`{"notes":null}`), &d))

	assert.False(t, d.Name.Set)
	v, ok := d.Notes.Get()
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestPatchIsZero(t *testing.T) {
	assert.True(t, Patch[int]{}.IsZero())
	assert.False(t, Set(0).IsZero())
}
