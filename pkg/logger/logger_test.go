package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_NivelYServicio(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "warn", Service: "carwash-api", Output: &buf})

	l.Info().Msg("descartado")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("visible")
	entry := decodeLine(t, &buf)
	assert.Equal(t, "carwash-api", entry[FieldService])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "visible", entry["message"])
}

func TestRequest_HuellaDeSesion(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Level: "debug", Output: &buf}).Named("page_guard")

	const id = "5b1d8c1e-8d0f-4c3e-9a6b-1f2e3d4c5b6a"
	l.Request("GET", "/admin/dashboard", id).Debug().Msg("redirect")

	entry := decodeLine(t, &buf)
	assert.Equal(t, "page_guard", entry[FieldComponent])
	assert.Equal(t, "GET", entry[FieldMethod])
	assert.Equal(t, "/admin/dashboard", entry[FieldPath])
	assert.Equal(t, SessionFingerprint(id), entry[FieldSession])
	assert.NotContains(t, buf.String(), id)
	assert.NotContains(t, entry, FieldService, "sin Service no se agrega el campo")
}

func TestRequest_SinSesion(t *testing.T) {
	var buf bytes.Buffer
	New(Config{Level: "debug", Output: &buf}).Request("POST", "/login", "").Info().Msg("x")

	assert.NotContains(t, decodeLine(t, &buf), FieldSession)
}

func TestSessionFingerprint(t *testing.T) {
	a := SessionFingerprint("abc")
	assert.Len(t, a, 12)
	assert.Equal(t, a, SessionFingerprint("abc"))
	assert.NotEqual(t, a, SessionFingerprint("abd"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "debug", parseLevel("debug").String())
	assert.Equal(t, "info", parseLevel("verbose").String())
}
