package domain

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "tadipaar/pkg/domain-errors"
)

// TestParseUUID_Invariants validates that IDs must be valid, non-empty,
// non-nil UUIDs at trust boundaries.
func TestParseUUID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseExterneeID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseExterneeID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseAreaID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		valid := uuid.New()
		id, err := ParseExterneeID(valid.String())
		require.NoError(t, err)
		assert.Equal(t, ExterneeID(valid), id)
	})
}

// TestJSONForm pins the wire form of typed IDs: the canonical UUID string,
// round-trippable through the Parse helpers.
func TestJSONForm(t *testing.T) {
	t.Run("marshals as the canonical UUID string", func(t *testing.T) {
		areaID := NewAreaID()

		body, err := json.Marshal(struct {
			ID AreaID `json:"id"`
		}{ID: areaID})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"`+areaID.String()+`"}`, string(body))
	})

	t.Run("listed id feeds back into parse", func(t *testing.T) {
		externeeID := NewExterneeID()

		body, err := json.Marshal(externeeID)
		require.NoError(t, err)

		var rendered string
		require.NoError(t, json.Unmarshal(body, &rendered))
		parsed, err := ParseExterneeID(rendered)
		require.NoError(t, err)
		assert.Equal(t, externeeID, parsed)
	})

	t.Run("unmarshals from the string form", func(t *testing.T) {
		checkInID := NewCheckInID()

		var decoded struct {
			ID CheckInID `json:"id"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"id":"`+checkInID.String()+`"}`), &decoded))
		assert.Equal(t, checkInID, decoded.ID)
	})
}

// TestTypeDistinction documents that entity ID types are not interchangeable.
// The real check is at compile time; this just pins the runtime behavior.
func TestTypeDistinction(t *testing.T) {
	externeeID := NewExterneeID()
	officerID := NewOfficerID()

	// var _ ExterneeID = officerID // would not compile

	assert.NotEqual(t, uuid.UUID(externeeID), uuid.UUID(officerID))
	assert.False(t, externeeID.IsZero())
	assert.True(t, ExterneeID{}.IsZero())
}
