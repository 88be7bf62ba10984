package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidYAML(t *testing.T) {
	content := `
runs_dir: pipeline/runs
state_dir: .state
auto_select: true
verbose: true
excluded_category_cap: 25
`
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "pipeline/runs", cfg.RunsDir)
	assert.Equal(t, ".state", cfg.StateDir)
	assert.True(t, cfg.AutoSelect)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, 25, cfg.ExcludedCategoryCap)
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte("runs_dir: [unclosed"), 0644))

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config YAML")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.yaml")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadProjectConfig_MissingFileUsesDefaults(t *testing.T) {
	root := t.TempDir()

	cfg, err := LoadProjectConfig(root)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".appfactory"), cfg.StatePath())
	assert.Equal(t, filepath.Join(root, "runs"), cfg.RunsPath())
	assert.False(t, cfg.AutoSelect)
}

func TestLoadProjectConfig_MergesFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".appfactory"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultConfigPath), []byte("runs_dir: /abs/runs\nauto_select: true\n"), 0644))

	cfg, err := LoadProjectConfig(root)
	require.NoError(t, err)
	assert.Equal(t, "/abs/runs", cfg.RunsPath())
	assert.Equal(t, filepath.Join(root, ".appfactory"), cfg.StatePath())
	assert.True(t, cfg.AutoSelect)
}

func TestLoadProjectConfig_InvalidValues(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".appfactory"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultConfigPath), []byte("excluded_category_cap: 500\n"), 0644))

	_, err := LoadProjectConfig(root)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config error")
}

func TestValidate_SameDirectories(t *testing.T) {
	cfg := Config{ProjectRoot: "/p", StateDir: "state", RunsDir: "./state"}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{EnvAutoSelect: "1", EnvVerbose: "true"}
	cfg := Defaults("/p")
	cfg.ApplyEnv(func(k string) string { return env[k] })

	assert.True(t, cfg.AutoSelect)
	assert.True(t, cfg.Verbose)

	other := Defaults("/p")
	other.ApplyEnv(func(k string) string {
		if k == EnvAutoSelect {
			return "yes"
		}
		return ""
	})
	assert.False(t, other.AutoSelect)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{RunsDir: "custom"}
	merged := cfg.MergeWithDefaults(Config{ProjectRoot: "/root", StateDir: ".s", RunsDir: "runs", Verbose: true})

	assert.Equal(t, "/root", merged.ProjectRoot)
	assert.Equal(t, ".s", merged.StateDir)
	assert.Equal(t, "custom", merged.RunsDir)
	assert.True(t, merged.Verbose)
}
