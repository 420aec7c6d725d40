package openstack

import (
	"context"

	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/subnets"
)

// Interfaces for the neutron services, narrow enough to mock in tests.

// NetworkAPI lists and creates networks.
type NetworkAPI interface {
	ListNetworks(ctx context.Context, name string) ([]networks.Network, error)
	// CreateNetwork creates an admin-up network; external marks it as a
	// router-external network.
	CreateNetwork(ctx context.Context, name string, external bool) (*networks.Network, error)
}

// SubnetAPI lists and creates subnets.
type SubnetAPI interface {
	ListSubnets(ctx context.Context, name string) ([]subnets.Subnet, error)
	CreateSubnet(ctx context.Context, name string, ipVersion int, cidr, networkID string) (*subnets.Subnet, error)
}

// RouterAPI lists and creates routers and attaches subnet interfaces.
type RouterAPI interface {
	ListRouters(ctx context.Context, name string) ([]routers.Router, error)
	// CreateRouter creates an admin-up router with its external gateway set
	// to gatewayNetworkID.
	CreateRouter(ctx context.Context, name, gatewayNetworkID string) (*routers.Router, error)
	AddRouterInterface(ctx context.Context, routerID, subnetID string) error
}

// SecurityGroupAPI lists and creates security groups.
type SecurityGroupAPI interface {
	ListSecurityGroups(ctx context.Context, name string) ([]groups.SecGroup, error)
	CreateSecurityGroup(ctx context.Context, name string) (*groups.SecGroup, error)
}

// NetworkingAPI is the full neutron surface the bootstrapper needs.
type NetworkingAPI interface {
	NetworkAPI
	SubnetAPI
	RouterAPI
	SecurityGroupAPI
}
