package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ExampleDocument(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "cosmofied-widget-test", cfg.Management.Instance.Name)
	assert.Equal(t, "ubuntu", cfg.Env.UserOnManagement)
	assert.Equal(t, ModeReference, cfg.Management.Network.Mode())
	assert.Equal(t, "cosmo-dsl/management.yaml", cfg.Env.DSLRelativePath)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadBytes_JSONDocument(t *testing.T) {
	// The original tooling consumed JSON; yaml.v3 parses it as a YAML subset.
	data := `{
		"keystone": {
			"username": "u", "password": "p",
			"auth_url": "https://keystone.example.com:5000/v2.0/",
			"tenant_name": "t"
		},
		"neutron": {"url": "https://neutron.example.com:9696/"},
		"management": {
			"region": "region-a",
			"instance": {"name": "m", "image": "67074", "flavor": "101", "keypair_name": "kp"},
			"network": {"name": "n", "externally_provisioned": true},
			"subnet": {"name": "s", "ip_version": 4, "cidr": "10.0.0.0/24", "externally_provisioned": true},
			"ext_network": {"name": "e", "externally_provisioned": true},
			"router": {"name": "r", "externally_provisioned": true},
			"security_group_user": {"name": "sgu"},
			"security_group_manager": {"name": "sgm", "cidr": "62.90.11.161/32"}
		},
		"env": {
			"workdir": "/tmp/w",
			"dsl_relative_path_in_workdir": "dsl.yaml",
			"user_on_management": "ubuntu",
			"userhome_on_management": "/home/ubuntu",
			"management_key_path": "/keys/m.pem",
			"agents_key_path": "/keys/a.pem"
		}
	}`

	cfg, err := LoadBytes([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, "67074", cfg.Management.Instance.Image)
	assert.Equal(t, 4, cfg.Management.Subnet.IPVersion)
}

func TestParse_NotAMapping(t *testing.T) {
	for _, data := range []string{"- a\n- b\n", "just a scalar"} {
		_, err := Parse([]byte(data))
		require.Error(t, err, "input %q", data)
		fe, ok := err.(*FieldError)
		require.True(t, ok)
		assert.Equal(t, MalformedDocument, fe.Kind)
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse(nil)
	require.Error(t, err)
	fe, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, MalformedDocument, fe.Kind)
}

func TestParse_InvalidSyntax(t *testing.T) {
	_, err := Parse([]byte("keystone: [unclosed"))
	require.Error(t, err)
	fe, ok := err.(*FieldError)
	require.True(t, ok)
	assert.Equal(t, MalformedDocument, fe.Kind)
}

func TestSave_RoundTrip(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "config.yaml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, Save(cfg, path))

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}
