package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wellmaintained/buildsh/internal/errors"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("BUILDSH_DIR_MODE", "")
	t.Setenv("BUILDSH_WITHIN", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0775), cfg.DirMode)
	assert.Equal(t, "", cfg.Within)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BUILDSH_DIR_MODE", "0770")
	t.Setenv("BUILDSH_WITHIN", "/srv/builds")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0770), cfg.DirMode)
	assert.Equal(t, "/srv/builds", cfg.Within)
}

func TestLoadConfigInvalidMode(t *testing.T) {
	t.Setenv("BUILDSH_DIR_MODE", "rwx")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BUILDSH_DIR_MODE")
	assert.Equal(t, 2, errors.GetExitCode(err))
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    os.FileMode
		wantErr bool
	}{
		{name: "leading zero", input: "0775", want: 0775},
		{name: "no leading zero", input: "755", want: 0755},
		{name: "zero", input: "0", want: 0},
		{name: "not octal", input: "0789", wantErr: true},
		{name: "letters", input: "g+s", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "special bits rejected", input: "2775", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
