package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetGenerator(t *testing.T) {
	tests := []struct {
		shell   string
		want    Generator
		wantErr bool
	}{
		{"bash", &BashGenerator{}, false},
		{"zsh", &ZshGenerator{}, false},
		{"fish", &FishGenerator{}, false},
		{"powershell", &PowerShellGenerator{}, false},
		{"PowerShell", &PowerShellGenerator{}, false},
		{"tcsh", nil, true},
		{"", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			g, err := GetGenerator(tt.shell)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedShell)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, g)
		})
	}
}

func TestGenerate_UsesBaseName(t *testing.T) {
	script, err := Generate("bash", "/usr/local/bin/mytool", CompletionData{})
	require.NoError(t, err)
	assert.Contains(t, script, "complete -F __mytool_completion mytool")
	assert.NotContains(t, script, "/usr/local/bin")
}

func TestGenerate_Unsupported(t *testing.T) {
	_, err := Generate("cmd.exe", "mytool", CompletionData{})
	assert.ErrorIs(t, err, ErrUnsupportedShell)
	assert.Contains(t, err.Error(), "cmd.exe")
}

func TestSupportedShells(t *testing.T) {
	assert.Equal(t, []string{"bash", "fish", "powershell", "zsh"}, SupportedShells())
}
