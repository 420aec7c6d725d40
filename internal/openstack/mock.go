package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/subnets"
)

// MockClient is an in-memory NetworkingAPI for tests. Resources are held in
// slices seeded by the test; creates append and record the call.
type MockClient struct {
	Networks       []networks.Network
	Subnets        []subnets.Subnet
	Routers        []routers.Router
	SecurityGroups []groups.SecGroup

	// CreatedExternal records the external flag per created network name.
	CreatedExternal map[string]bool
	// RouterInterfaces records routerID -> attached subnet IDs.
	RouterInterfaces map[string][]string
	// CreatedSubnets records the network ID per created subnet name.
	CreatedSubnets map[string]string
	// Calls records every mutating call in order, e.g. "create-network:name".
	Calls []string

	// FailWith, when set, makes every call return this error.
	FailWith error

	nextID int
}

// NewMockClient returns an empty mock.
func NewMockClient() *MockClient {
	return &MockClient{
		CreatedExternal:  make(map[string]bool),
		RouterInterfaces: make(map[string][]string),
		CreatedSubnets:   make(map[string]string),
	}
}

func (m *MockClient) newID(kind string) string {
	m.nextID++
	return fmt.Sprintf("%s-%04d", kind, m.nextID)
}

// ListNetworks implements NetworkAPI.
func (m *MockClient) ListNetworks(_ context.Context, name string) ([]networks.Network, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []networks.Network
	for _, n := range m.Networks {
		if n.Name == name {
			out = append(out, n)
		}
	}
	return out, nil
}

// CreateNetwork implements NetworkAPI.
func (m *MockClient) CreateNetwork(_ context.Context, name string, external bool) (*networks.Network, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	n := networks.Network{ID: m.newID("net"), Name: name, AdminStateUp: true}
	m.Networks = append(m.Networks, n)
	m.CreatedExternal[name] = external
	m.Calls = append(m.Calls, "create-network:"+name)
	return &n, nil
}

// ListSubnets implements SubnetAPI.
func (m *MockClient) ListSubnets(_ context.Context, name string) ([]subnets.Subnet, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []subnets.Subnet
	for _, s := range m.Subnets {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out, nil
}

// CreateSubnet implements SubnetAPI.
func (m *MockClient) CreateSubnet(_ context.Context, name string, ipVersion int, cidr, networkID string) (*subnets.Subnet, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	s := subnets.Subnet{ID: m.newID("subnet"), Name: name, NetworkID: networkID, CIDR: cidr, IPVersion: ipVersion}
	m.Subnets = append(m.Subnets, s)
	m.CreatedSubnets[name] = networkID
	m.Calls = append(m.Calls, "create-subnet:"+name)
	return &s, nil
}

// ListRouters implements RouterAPI.
func (m *MockClient) ListRouters(_ context.Context, name string) ([]routers.Router, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []routers.Router
	for _, r := range m.Routers {
		if r.Name == name {
			out = append(out, r)
		}
	}
	return out, nil
}

// CreateRouter implements RouterAPI.
func (m *MockClient) CreateRouter(_ context.Context, name, gatewayNetworkID string) (*routers.Router, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	r := routers.Router{ID: m.newID("router"), Name: name, AdminStateUp: true}
	r.GatewayInfo = routers.GatewayInfo{NetworkID: gatewayNetworkID}
	m.Routers = append(m.Routers, r)
	m.Calls = append(m.Calls, "create-router:"+name)
	return &r, nil
}

// AddRouterInterface implements RouterAPI.
func (m *MockClient) AddRouterInterface(_ context.Context, routerID, subnetID string) error {
	if m.FailWith != nil {
		return m.FailWith
	}
	m.RouterInterfaces[routerID] = append(m.RouterInterfaces[routerID], subnetID)
	m.Calls = append(m.Calls, "add-router-interface:"+routerID)
	return nil
}

// ListSecurityGroups implements SecurityGroupAPI.
func (m *MockClient) ListSecurityGroups(_ context.Context, name string) ([]groups.SecGroup, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	var out []groups.SecGroup
	for _, g := range m.SecurityGroups {
		if g.Name == name {
			out = append(out, g)
		}
	}
	return out, nil
}

// CreateSecurityGroup implements SecurityGroupAPI.
func (m *MockClient) CreateSecurityGroup(_ context.Context, name string) (*groups.SecGroup, error) {
	if m.FailWith != nil {
		return nil, m.FailWith
	}
	g := groups.SecGroup{ID: m.newID("sg"), Name: name}
	m.SecurityGroups = append(m.SecurityGroups, g)
	m.Calls = append(m.Calls, "create-security-group:"+name)
	return &g, nil
}
