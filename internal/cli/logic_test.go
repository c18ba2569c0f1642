package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogicText(t *testing.T) {
	out, _, err := execute(t, "logic", "0xH000010=1_d0xH000010=0S0xH000020=5")
	require.NoError(t, err)

	assert.Contains(t, out, "Core\n")
	assert.Contains(t, out, "Alt 1\n")
	assert.Contains(t, out, "0xH10=1")
	assert.Contains(t, out, "d0xH10=0")
	assert.Contains(t, out, "Mem 0x00000010 = 1")
	assert.NotContains(t, out, "Assessment [")
}

func TestLogicReportsIssues(t *testing.T) {
	out, _, err := execute(t, "logic", "0xH10=1")
	require.NoError(t, err)
	assert.Contains(t, out, "Assessment [warn]")
	assert.Contains(t, out, "missing-delta")
	assert.Contains(t, out, "one-condition")
}

func TestLogicValueJSON(t *testing.T) {
	out, _, err := execute(t, "--format", "json", "logic", "--mode", "value", "M:0xH10*2")
	require.NoError(t, err)

	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Logic struct {
				Value  bool              `json:"value"`
				Groups []json.RawMessage `json:"groups"`
			} `json:"logic"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Logic.Value)
	assert.Len(t, resp.Data.Logic.Groups, 1)
}

func TestLogicErrors(t *testing.T) {
	_, errOut, err := execute(t, "logic", "0xH10=1_J:0xH11=1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, errOut, "Error [E003]")

	_, errOut, err = execute(t, "logic", "--mode", "sideways", "0xH10=1")
	require.Error(t, err)
	assert.Contains(t, errOut, "Error [E005]")
}
