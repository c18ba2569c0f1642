package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteText(t *testing.T) {
	out, _, err := execute(t, "note", "--address", "0x1234", `[8-bit] Character\n0x00 = Mario\n0x01 = Luigi\n0x02 = Peach`)
	require.NoError(t, err)

	assert.Contains(t, out, "Address: 0x00001234\n")
	assert.Contains(t, out, "Type:    8-bit\n")
	assert.Contains(t, out, "Bytes:   1\n")
	assert.Contains(t, out, "Pointer: false\n")
	assert.Contains(t, out, "Values:\n")
	assert.Contains(t, out, "= Luigi")
	assert.NotContains(t, out, "Assessment [")
}

func TestNoteWithoutSize(t *testing.T) {
	out, _, err := execute(t, "note", "Lives")
	require.NoError(t, err)
	assert.Contains(t, out, "Type:    unknown\n")
	assert.Contains(t, out, "Assessment [warn]")
	assert.Contains(t, out, "note-no-size")
}

func TestNoteJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "note", "--address", "20", "[16-bit] Timer")
	require.NoError(t, err)

	var resp struct {
		Data struct {
			Note struct {
				Address uint32 `json:"address"`
				Size    int    `json:"size"`
			} `json:"note"`
			Pointer bool `json:"pointer"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, uint32(0x20), resp.Data.Note.Address)
	assert.Equal(t, 2, resp.Data.Note.Size)
	assert.False(t, resp.Data.Pointer)
}

func TestNoteBadAddress(t *testing.T) {
	_, errOut, err := execute(t, "note", "--address", "zz", "[8-bit] x")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error [E005]")
}
