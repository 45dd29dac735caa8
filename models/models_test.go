package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	var p Person
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Doe","firstName":"John","birthDate":"1970-03-14"}`), &p))
	assert.Equal(t, "1970-03-14", p.BirthDate.String())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"birthDate":"1970-03-14"`)
	assert.NotContains(t, string(out), "lie")
}

func TestDate_InvalidFormat(t *testing.T) {
	_, err := ParseDate("14/03/1970")
	assert.Error(t, err)
}

func TestPage(t *testing.T) {
	p := NewPage(3, 20)
	assert.Equal(t, uint64(60), p.Offset())
	assert.Equal(t, uint64(20), p.Limit())

	capped := NewPage(0, 5000)
	assert.Equal(t, MaxPageQuantity, capped.Quantity)

	large := NewPage(65535, 100)
	assert.Equal(t, uint64(6553500), large.Offset())
}

func TestAnonymousToken(t *testing.T) {
	tok := AnonymousToken()

	assert.True(t, tok.IsAnonymous())
	assert.True(t, tok.Has(PermissionGetPerson))
	assert.True(t, tok.Has(PermissionGetSpeech))
	assert.False(t, tok.Has(PermissionCreatePerson))
	assert.False(t, tok.Has(PermissionDeleteSpeech))
}

func TestParsePermission(t *testing.T) {
	p, ok := ParsePermission("UpdateSpeech")
	assert.True(t, ok)
	assert.Equal(t, PermissionUpdateSpeech, p)

	_, ok = ParsePermission("Administer")
	assert.False(t, ok)
}

func TestSpeechStatus_Valid(t *testing.T) {
	assert.True(t, SpeechStatusPending.Valid())
	assert.True(t, SpeechStatusValidated.Valid())
	assert.False(t, SpeechStatus("pending").Valid())
}

func TestAppBuildInfo_DefaultsToNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("1.0.0", "", "")

	assert.Equal(t, VersionResponse{Version: "1.0.0", Date: "N/A", Commit: "N/A"}, info.Response())
}
