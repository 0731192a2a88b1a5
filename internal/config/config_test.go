package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "1", cfg.Version)
	assert.Equal(t, "generated.capnp", cfg.Output)
	assert.Equal(t, "0x1234_5678_ABCD_EF01", cfg.SchemaID)
	assert.Equal(t, []string{".h", ".hpp", ".hh"}, cfg.Extensions)
	assert.Empty(t, cfg.Exclude)
}

func TestParse(t *testing.T) {
	yaml := `
version: "1"
output: schema/api.capnp
schema_id: "0xcafe_f00d"
extensions: [h, .HPP]
exclude:
  - third_party
  - build
`

	cfg, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "schema/api.capnp", cfg.Output)
	assert.Equal(t, "0xcafe_f00d", cfg.SchemaID)

	// Extensions are normalized to lowercase dotted form.
	assert.Equal(t, []string{".h", ".hpp"}, cfg.Extensions)
	assert.Equal(t, []string{"third_party", "build"}, cfg.Exclude)
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse([]byte("output: [unclosed"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capnp-generator.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: out.capnp\n"), 0o644))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "out.capnp", cfg.Output)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
