package openstack

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gophercloud/gophercloud"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/networks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cosmodeploy/cosmoboot/internal/config"
)

func TestEnsureNetwork_ReferenceFound(t *testing.T) {
	m := NewMockClient()
	m.Networks = []networks.Network{{ID: "net-1", Name: "cosmo-network"}}

	id, err := EnsureNetwork(context.Background(), m,
		config.NetworkSpec{Name: "cosmo-network", ExternallyProvisioned: true}, false)
	require.NoError(t, err)
	assert.Equal(t, "net-1", id)
	assert.Empty(t, m.Calls, "reference mode must not create anything")
}

func TestEnsureNetwork_ReferenceNotFound(t *testing.T) {
	m := NewMockClient()

	_, err := EnsureNetwork(context.Background(), m,
		config.NetworkSpec{Name: "cosmo-network", ExternallyProvisioned: true}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `network "cosmo-network" was not found`)
}

func TestEnsureNetwork_ManagedCreates(t *testing.T) {
	m := NewMockClient()

	id, err := EnsureNetwork(context.Background(), m,
		config.NetworkSpec{Name: "cosmo-network"}, false)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, []string{"create-network:cosmo-network"}, m.Calls)
	assert.False(t, m.CreatedExternal["cosmo-network"])
}

func TestEnsureNetwork_ManagedDuplicate(t *testing.T) {
	m := NewMockClient()
	m.Networks = []networks.Network{{ID: "net-1", Name: "cosmo-network"}}

	_, err := EnsureNetwork(context.Background(), m,
		config.NetworkSpec{Name: "cosmo-network"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	assert.Empty(t, m.Calls)
}

func TestEnsureNetwork_AmbiguousLookup(t *testing.T) {
	m := NewMockClient()
	m.Networks = []networks.Network{
		{ID: "net-1", Name: "cosmo-network"},
		{ID: "net-2", Name: "cosmo-network"},
	}

	for _, externallyProvisioned := range []bool{true, false} {
		_, err := EnsureNetwork(context.Background(), m,
			config.NetworkSpec{Name: "cosmo-network", ExternallyProvisioned: externallyProvisioned}, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ambiguous")
		assert.Contains(t, err.Error(), "2 matches")
	}
}

func TestEnsureNetwork_ExternalFlag(t *testing.T) {
	m := NewMockClient()

	_, err := EnsureNetwork(context.Background(), m,
		config.NetworkSpec{Name: "nova-ext-net"}, true)
	require.NoError(t, err)
	assert.True(t, m.CreatedExternal["nova-ext-net"])
}

func TestEnsureSubnet_ManagedCreatesOnNetwork(t *testing.T) {
	m := NewMockClient()

	id, err := EnsureSubnet(context.Background(), m, config.SubnetSpec{
		Name:      "cosmo-subnet",
		IPVersion: 4,
		CIDR:      "10.67.79.0/24",
	}, "net-1")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, "net-1", m.CreatedSubnets["cosmo-subnet"])
	require.Len(t, m.Subnets, 1)
	assert.Equal(t, "10.67.79.0/24", m.Subnets[0].CIDR)
	assert.Equal(t, 4, m.Subnets[0].IPVersion)
}

func TestEnsureRouter_ManagedCreatesGatewayAndInterface(t *testing.T) {
	m := NewMockClient()

	id, err := EnsureRouter(context.Background(), m,
		config.RouterSpec{Name: "cosmo-router"}, "ext-net-1", "subnet-1")
	require.NoError(t, err)
	require.Len(t, m.Routers, 1)
	assert.Equal(t, "ext-net-1", m.Routers[0].GatewayInfo.NetworkID)
	assert.Equal(t, []string{"subnet-1"}, m.RouterInterfaces[id])
}

func TestEnsureRouter_ReferenceSkipsInterface(t *testing.T) {
	m := NewMockClient()
	m.Routers = []routers.Router{{ID: "router-1", Name: "cosmo-router"}}

	id, err := EnsureRouter(context.Background(), m,
		config.RouterSpec{Name: "cosmo-router", ExternallyProvisioned: true}, "ext-net-1", "subnet-1")
	require.NoError(t, err)
	assert.Equal(t, "router-1", id)
	assert.Empty(t, m.RouterInterfaces)
}

func TestEnsureSecurityGroup_AlwaysManaged(t *testing.T) {
	m := NewMockClient()

	id, err := EnsureSecurityGroup(context.Background(), m, "cosmo-sg-user")
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	// A second run against the same tenant fails: the group now exists.
	_, err = EnsureSecurityGroup(context.Background(), m, "cosmo-sg-user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestEnsureSecurityGroup_ExistingGroupRejected(t *testing.T) {
	m := NewMockClient()
	m.SecurityGroups = []groups.SecGroup{{ID: "sg-1", Name: "cosmo-sg-user"}}

	_, err := EnsureSecurityGroup(context.Background(), m, "cosmo-sg-user")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `security group "cosmo-sg-user" already exists`)
}

func TestEnsure_ListFailurePropagates(t *testing.T) {
	m := NewMockClient()
	m.FailWith = errors.New("neutron is down")

	_, err := EnsureNetwork(context.Background(), m, config.NetworkSpec{Name: "n"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list networks")
	assert.Contains(t, err.Error(), "neutron is down")
}

func TestIsRetryable(t *testing.T) {
	assert.False(t, isRetryable(nil))
	assert.True(t, isRetryable(errors.New("connection reset by peer")))

	serverErr := gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusBadGateway}
	assert.True(t, isRetryable(serverErr))

	throttled := gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusTooManyRequests}
	assert.True(t, isRetryable(throttled))

	badRequest := gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusBadRequest}
	assert.False(t, isRetryable(badRequest))

	notFound := gophercloud.ErrDefault404{
		ErrUnexpectedResponseCode: gophercloud.ErrUnexpectedResponseCode{Actual: http.StatusNotFound},
	}
	assert.False(t, isRetryable(notFound))
}
