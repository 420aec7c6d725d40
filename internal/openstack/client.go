package openstack

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/gophercloud/gophercloud"
	"github.com/gophercloud/gophercloud/openstack"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/external"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/subnets"

	"github.com/cosmodeploy/cosmoboot/internal/config"
)

var logger = log.New(log.Writer(), "[openstack] ", log.LstdFlags|log.Lmsgprefix)

const (
	retryAttempts = 4
	retryDelay    = 500 * time.Millisecond
)

// Connector holds an authenticated keystone session and a neutron client
// pinned to the configured endpoint. It implements NetworkingAPI.
type Connector struct {
	provider *gophercloud.ProviderClient
	neutron  *gophercloud.ServiceClient
}

// Connect authenticates against keystone with the configured credentials and
// builds a neutron client for the configured endpoint URL. The endpoint is
// used verbatim instead of being located through the service catalog.
func Connect(cfg *config.Config) (*Connector, error) {
	provider, err := openstack.AuthenticatedClient(gophercloud.AuthOptions{
		IdentityEndpoint: cfg.Keystone.AuthURL,
		Username:         cfg.Keystone.Username,
		Password:         cfg.Keystone.Password,
		TenantName:       cfg.Keystone.TenantName,
		AllowReauth:      true,
	})
	if err != nil {
		return nil, fmt.Errorf("keystone authentication failed: %w", err)
	}

	endpoint := cfg.Neutron.URL
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	neutron := &gophercloud.ServiceClient{
		ProviderClient: provider,
		Endpoint:       endpoint,
		ResourceBase:   endpoint + "v2.0/",
		Type:           "network",
	}

	return &Connector{provider: provider, neutron: neutron}, nil
}

// ListNetworks implements NetworkAPI.
func (c *Connector) ListNetworks(ctx context.Context, name string) ([]networks.Network, error) {
	var result []networks.Network
	err := c.call(ctx, func() error {
		page, err := networks.List(c.neutron, networks.ListOpts{Name: name}).AllPages()
		if err != nil {
			return err
		}
		result, err = networks.ExtractNetworks(page)
		return err
	})
	return result, err
}

// CreateNetwork implements NetworkAPI.
func (c *Connector) CreateNetwork(ctx context.Context, name string, ext bool) (*networks.Network, error) {
	up := true
	var opts networks.CreateOptsBuilder = networks.CreateOpts{
		Name:         name,
		AdminStateUp: &up,
	}
	if ext {
		opts = external.CreateOptsExt{
			CreateOptsBuilder: opts,
			External:          &ext,
		}
	}

	var result *networks.Network
	err := c.call(ctx, func() error {
		network, err := networks.Create(c.neutron, opts).Extract()
		if err != nil {
			return err
		}
		result = network
		return nil
	})
	return result, err
}

// ListSubnets implements SubnetAPI.
func (c *Connector) ListSubnets(ctx context.Context, name string) ([]subnets.Subnet, error) {
	var result []subnets.Subnet
	err := c.call(ctx, func() error {
		page, err := subnets.List(c.neutron, subnets.ListOpts{Name: name}).AllPages()
		if err != nil {
			return err
		}
		result, err = subnets.ExtractSubnets(page)
		return err
	})
	return result, err
}

// CreateSubnet implements SubnetAPI.
func (c *Connector) CreateSubnet(ctx context.Context, name string, ipVersion int, cidr, networkID string) (*subnets.Subnet, error) {
	var result *subnets.Subnet
	err := c.call(ctx, func() error {
		subnet, err := subnets.Create(c.neutron, subnets.CreateOpts{
			Name:      name,
			NetworkID: networkID,
			CIDR:      cidr,
			IPVersion: gophercloud.IPVersion(ipVersion),
		}).Extract()
		if err != nil {
			return err
		}
		result = subnet
		return nil
	})
	return result, err
}

// ListRouters implements RouterAPI.
func (c *Connector) ListRouters(ctx context.Context, name string) ([]routers.Router, error) {
	var result []routers.Router
	err := c.call(ctx, func() error {
		page, err := routers.List(c.neutron, routers.ListOpts{Name: name}).AllPages()
		if err != nil {
			return err
		}
		result, err = routers.ExtractRouters(page)
		return err
	})
	return result, err
}

// CreateRouter implements RouterAPI.
func (c *Connector) CreateRouter(ctx context.Context, name, gatewayNetworkID string) (*routers.Router, error) {
	up := true
	opts := routers.CreateOpts{
		Name:         name,
		AdminStateUp: &up,
	}
	if gatewayNetworkID != "" {
		opts.GatewayInfo = &routers.GatewayInfo{NetworkID: gatewayNetworkID}
	}

	var result *routers.Router
	err := c.call(ctx, func() error {
		router, err := routers.Create(c.neutron, opts).Extract()
		if err != nil {
			return err
		}
		result = router
		return nil
	})
	return result, err
}

// AddRouterInterface implements RouterAPI.
func (c *Connector) AddRouterInterface(ctx context.Context, routerID, subnetID string) error {
	return c.call(ctx, func() error {
		_, err := routers.AddInterface(c.neutron, routerID, routers.AddInterfaceOpts{
			SubnetID: subnetID,
		}).Extract()
		return err
	})
}

// ListSecurityGroups implements SecurityGroupAPI.
func (c *Connector) ListSecurityGroups(ctx context.Context, name string) ([]groups.SecGroup, error) {
	var result []groups.SecGroup
	err := c.call(ctx, func() error {
		page, err := groups.List(c.neutron, groups.ListOpts{Name: name}).AllPages()
		if err != nil {
			return err
		}
		result, err = groups.ExtractGroups(page)
		return err
	})
	return result, err
}

// CreateSecurityGroup implements SecurityGroupAPI.
func (c *Connector) CreateSecurityGroup(ctx context.Context, name string) (*groups.SecGroup, error) {
	var result *groups.SecGroup
	err := c.call(ctx, func() error {
		group, err := groups.Create(c.neutron, groups.CreateOpts{Name: name}).Extract()
		if err != nil {
			return err
		}
		result = group
		return nil
	})
	return result, err
}

// call runs a neutron operation with retry on transient failures.
func (c *Connector) call(ctx context.Context, op func() error) error {
	return retry.Do(op,
		retry.Context(ctx),
		retry.Attempts(retryAttempts),
		retry.Delay(retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.RetryIf(isRetryable),
		retry.LastErrorOnly(true),
	)
}
