package models_test

import (
	"encoding/json"
	"testing"

	"github.com/UnknownOlympus/hera/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected models.ID
		wantErr  bool
	}{
		{"number", `42`, 42, false},
		{"string", `"42"`, 42, false},
		{"large number as string", `"9007199254740993"`, 9007199254740993, false},
		{"null keeps zero", `null`, 0, false},
		{"garbage string", `"abc"`, 0, true},
		{"float", `4.2`, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var id models.ID
			err := json.Unmarshal([]byte(tc.input), &id)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}

func TestID_NumberAndStringDecodeEqually(t *testing.T) {
	t.Parallel()

	var fromNumber, fromString models.ID
	require.NoError(t, json.Unmarshal([]byte(`123456789`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"123456789"`), &fromString))

	assert.Equal(t, fromNumber, fromString)
}

func TestParseID(t *testing.T) {
	t.Parallel()

	id, err := models.ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, models.ID(42), id)

	_, err = models.ParseID("not-a-number")
	require.Error(t, err)
}

func TestRole_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, models.RoleAdmin.Valid())
	assert.True(t, models.RoleManager.Valid())
	assert.True(t, models.RoleEmployee.Valid())
	assert.False(t, models.Role("superuser").Valid())
	assert.False(t, models.Role("").Valid())
}

func TestUser_PasswordNeverSerialized(t *testing.T) {
	t.Parallel()

	user := models.User{ID: 1, Email: "test@test.com", Password: "secret-hash", Name: "Test"}
	data, err := json.Marshal(user)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "secret-hash")
	assert.NotContains(t, string(data), "password")
}
