package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{name: "empty is help", text: "", wantType: CmdHelp},
		{name: "blank is help", text: "   ", wantType: CmdHelp},
		{name: "help", text: "help", wantType: CmdHelp},
		{name: "ajuda alias", text: "ajuda", wantType: CmdHelp},
		{name: "list", text: "list", wantType: CmdList},
		{name: "listar alias", text: "listar", wantType: CmdList},
		{
			name:     "add with args",
			text:     "add 2026-12-25 10:00 Festa de Natal",
			wantType: CmdAdd,
			wantArgs: []string{"2026-12-25", "10:00", "Festa", "de", "Natal"},
		},
		{
			name:     "remove with id",
			text:     "remove 42",
			wantType: CmdRemove,
			wantArgs: []string{"42"},
		},
		{name: "proximo", text: "proximo", wantType: CmdNext},
		{name: "proximo accented", text: "próximo", wantType: CmdNext},
		{name: "unknown", text: "dance", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText()
	assert.Contains(t, help, "/agenda add")
	assert.Contains(t, help, "/agenda remove")
	assert.Contains(t, help, "/agenda list")
	assert.Contains(t, help, "/agenda proximo")
}
