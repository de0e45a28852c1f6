package config

import (
	"bytes"
	"os"
	"path"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Syrah0/swiftSet/core/key"
)

func createTestingConfig() *Config {
	return &Config{
		Key:       "field:Name",
		Wrap:      true,
		Normalize: 100,
		Format:    FormatJSON,
	}
}

func TestConfigJsonCodec(t *testing.T) {
	c := createTestingConfig()
	b, e := json.Marshal(c)
	require.NoError(t, e)

	var c1 Config
	require.NoError(t, json.Unmarshal(b, &c1))

	b1, _ := json.Marshal(c1)
	assert.True(t, bytes.Equal(b, b1),
		"Encoded and decoded JSON does not equal to the original")
	assert.Equal(t, `{"key":"field:Name","wrap":true,"normalize":100,"format":"json"}`, string(b))
}

func TestConfigValidate(t *testing.T) {
	c := createTestingConfig()
	assert.NoError(t, c.Validate())
	assert.NoError(t, Default().Validate())

	c.Key = "field:"
	assert.ErrorContains(t, c.Validate(), "empty field name")

	c = createTestingConfig()
	c.Key = "upper"
	assert.ErrorContains(t, c.Validate(), "c.Key")

	c = createTestingConfig()
	c.Normalize = -1
	assert.Error(t, c.Validate())

	c = createTestingConfig()
	c.Format = "xml"
	assert.Error(t, c.Validate())
}

func TestConfigSource(t *testing.T) {
	s, e := createTestingConfig().Source()
	require.NoError(t, e)
	assert.Equal(t, key.KindField, s.Kind())
	assert.Equal(t, "Name", s.FieldName())

	s, e = Default().Source()
	require.NoError(t, e)
	assert.Equal(t, key.KindDefault, s.Kind())
}

func TestConfigArgs(t *testing.T) {
	c := createTestingConfig()
	f, e := c.Encode()
	require.NoError(t, e, "Failed encode config.Config")

	var c1 Config
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c1.RegisterAsFlag(flags, "settings")
	require.NoError(t, flags.Parse([]string{"--settings=" + f}))

	en1, _ := c1.Encode()
	assert.Equal(t, f, en1)
	assert.Equal(t, "json", flags.Lookup("settings").Value.Type())

	assert.Error(t, c1.Set("{"))
}

func TestLoadDefaults(t *testing.T) {
	c, e := Load(New(t.TempDir()))
	require.NoError(t, e)
	assert.Equal(t, Default(), c)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	yml := "key: field:Name\nwrap: true\nformat: json\nnormalize: 10\n"
	require.NoError(t, os.WriteFile(path.Join(dir, "histo.yaml"), []byte(yml), 0644))

	c, e := Load(New(dir))
	require.NoError(t, e)
	assert.Equal(t, &Config{Key: "field:Name", Wrap: true, Normalize: 10, Format: FormatJSON}, c)

	// The environment overrides the file.
	t.Setenv("HISTO_NORMALIZE", "20")
	c, e = Load(New(dir))
	require.NoError(t, e)
	assert.Equal(t, 20, c.Normalize)

	// Changed flags override the environment; unchanged ones do not
	// hide the file.
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("normalize", 0, "")
	flags.String("format", FormatText, "")
	require.NoError(t, flags.Parse([]string{"--normalize=30"}))
	v := New(dir)
	require.NoError(t, v.BindPFlags(flags))
	c, e = Load(v)
	require.NoError(t, e)
	assert.Equal(t, 30, c.Normalize)
	assert.Equal(t, FormatJSON, c.Format)
}

func TestLoadInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(path.Join(dir, "histo.yaml"), []byte("format: xml\n"), 0644))
	_, e := Load(New(dir))
	assert.ErrorContains(t, e, "Invalid configuration")

	require.NoError(t, os.WriteFile(path.Join(dir, "histo.yaml"), []byte("format: [\n"), 0644))
	_, e = Load(New(dir))
	assert.ErrorContains(t, e, "Cannot read config file")
}
