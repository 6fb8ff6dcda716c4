package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_Tree(t *testing.T) {
	root := newRootCmd()

	for _, path := range [][]string{{"serve"}, {"migrate"}, {"admin", "create"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.Equal(t, ".env", root.PersistentFlags().Lookup("env-file").DefValue)
}

func TestMigrateCommand_Args(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", []string{"migrate"}},
		{"unknown command", []string{"migrate", "sideways"}},
		{"too many", []string{"migrate", "up", "down"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newRootCmd()
			root.SetArgs(tt.args)
			root.SetOut(&bytes.Buffer{})
			root.SetErr(&bytes.Buffer{})
			assert.Error(t, root.Execute())
		})
	}
}

// isolate runs the command from an empty directory so no config.yaml or
// .env from the developer's checkout is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestMigrateCommand_RequiresPostgres(t *testing.T) {
	dir := isolate(t)
	t.Setenv("JOBBOARD_AUTH_JWT_SECRET", testSecret)
	t.Setenv("JOBBOARD_STORE_BACKEND", "memory")

	root := newRootCmd()
	root.SetArgs([]string{"migrate", "up", "--env-file", filepath.Join(dir, "missing.env")})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires the postgres backend")
}

func TestAdminCreate_RequiresFlags(t *testing.T) {
	isolate(t)

	root := newRootCmd()
	root.SetArgs([]string{"admin", "create", "--email", "root@example.com"})
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestLoad_MissingSecret(t *testing.T) {
	dir := isolate(t)
	t.Setenv("JOBBOARD_AUTH_JWT_SECRET", "")

	flags := &rootFlags{envFile: filepath.Join(dir, "missing.env")}
	_, _, err := flags.load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
