package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/relay/internal/core/domain"
)

func TestChannelsCmd_SidebarOrder(t *testing.T) {
	setupTestServices(t)
	seed(t)

	out, err := executeCommand(t, "", "channels")
	require.NoError(t, err)

	pinned := strings.Index(out, "* TRK-001 - Inbound pallets for door 4")
	other := strings.Index(out, "  yard-ops")
	require.NotEqual(t, -1, pinned)
	require.NotEqual(t, -1, other)
	assert.Less(t, pinned, other)
	assert.NotContains(t, out, "maria")
}

func TestChannelsCmd_Filter(t *testing.T) {
	setupTestServices(t)
	seed(t)

	out, err := executeCommand(t, "", "channels", "--filter", "yard")

	require.NoError(t, err)
	assert.Contains(t, out, "yard-ops")
	assert.NotContains(t, out, "TRK-001")
}

func TestChannelsCmd_DirectMessages(t *testing.T) {
	setupTestServices(t)
	seed(t)

	out, err := executeCommand(t, "", "channels", "--dm")

	require.NoError(t, err)
	assert.Contains(t, out, "maria, joe")
	assert.NotContains(t, out, "yard-ops")
}

func TestChannelsCmd_Empty(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "", "channels")
	require.NoError(t, err)
	assert.Contains(t, out, "No channels found.")

	resetFlags()
	out, err = executeCommand(t, "", "channels", "--dm")
	require.NoError(t, err)
	assert.Contains(t, out, "No direct messages found.")
}

func TestChannelsCmd_JSON(t *testing.T) {
	setupTestServices(t)
	seed(t)

	out, err := executeCommand(t, "", "channels", "--json", "-f", "door 4")
	require.NoError(t, err)

	var channels []domain.Channel
	require.NoError(t, json.Unmarshal([]byte(out), &channels))
	require.Len(t, channels, 1)
	assert.Equal(t, "c1", channels[0].ID)
	assert.True(t, channels[0].Pinned)
}

func TestSidebarLine(t *testing.T) {
	tests := []struct {
		name    string
		channel domain.Channel
		want    string
	}{
		{"plain", domain.Channel{Name: "yard-ops"}, "  yard-ops"},
		{"pinned with description", domain.Channel{Name: "TRK-9", Pinned: true, Description: "late"}, "* TRK-9 - late"},
		{
			"direct message",
			domain.Channel{Name: "dm-1", IsDirectMessage: true, Participants: []string{"ana", "raj"}},
			"  ana, raj",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sidebarLine(&tt.channel))
		})
	}
}
