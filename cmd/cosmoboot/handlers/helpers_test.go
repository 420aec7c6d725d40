package handlers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const validDocYAML = `keystone:
  username: cosmo-user
  password: secret
  auth_url: https://keystone.example.com:5000/v2.0/
  tenant_name: cosmo-tenant
neutron:
  url: https://neutron.example.com:9696/
management:
  region: region-a
  instance:
    name: cosmofied-widget-test
    image: "67074"
    flavor: "101"
    keypair_name: cosmo-manager-kp
  network:
    name: cosmo-network
    externally_provisioned: false
  subnet:
    name: cosmo-subnet
    ip_version: 4
    cidr: 10.67.79.0/24
    externally_provisioned: false
  ext_network:
    name: nova-ext-net
    externally_provisioned: false
  router:
    name: cosmo-router
    externally_provisioned: false
  security_group_user:
    name: cosmo-sg-user
  security_group_manager:
    name: cosmo-sg-manager
    cidr: 62.90.11.161/32
env:
  workdir: /home/ubuntu/cosmo-work
  dsl_relative_path_in_workdir: cosmo-dsl/management.yaml
  user_on_management: ubuntu
  userhome_on_management: /home/ubuntu
  management_key_path: KEYDIR/manager.pem
  agents_key_path: KEYDIR/agents.pem
`

// writeDoc writes a valid deployment document into a temp dir and returns
// its path. KEYDIR placeholders are pointed into the same dir so keygen
// tests stay sandboxed.
func writeDoc(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	data := strings.ReplaceAll(validDocYAML, "KEYDIR", filepath.Join(dir, "keys"))

	path := filepath.Join(dir, "cosmoboot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}
