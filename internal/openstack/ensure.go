package openstack

import (
	"context"
	"fmt"

	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/layer3/routers"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/extensions/security/groups"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/networks"
	"github.com/gophercloud/gophercloud/openstack/networking/v2/subnets"

	"github.com/cosmodeploy/cosmoboot/internal/config"
)

// reconcileFuncs defines the operations needed to ensure one resource.
type reconcileFuncs[T any] struct {
	// what names the resource kind in log and error messages.
	what string
	// list retrieves all resources with the given name.
	list func(ctx context.Context, name string) ([]T, error)
	// create creates the resource and returns it.
	create func(ctx context.Context) (*T, error)
	// id extracts the resource identifier.
	id func(*T) string
}

// ensureOrCreate reconciles a single named resource according to its
// provisioning mode and returns the resource ID.
//
// In reference mode the resource must already exist; in managed mode it must
// not. Either way an ambiguous lookup (several resources sharing the name) is
// an error, since the ID of the wrong resource must never be returned.
func ensureOrCreate[T any](ctx context.Context, mode config.ProvisionMode, name string, funcs reconcileFuncs[T]) (string, error) {
	id, err := findByName(ctx, name, funcs)
	if err != nil {
		return "", err
	}

	if mode == config.ModeReference {
		logger.Printf("Using existing %s %q", funcs.what, name)
		if id == "" {
			return "", fmt.Errorf("%s %q was not found", funcs.what, name)
		}
		return id, nil
	}

	logger.Printf("Creating %s %q", funcs.what, name)
	if id != "" {
		return "", fmt.Errorf("%s %q already exists", funcs.what, name)
	}

	resource, err := funcs.create(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to create %s %q: %w", funcs.what, name, err)
	}
	return funcs.id(resource), nil
}

// findByName returns the ID of the uniquely named resource, or "" when no
// resource has that name.
func findByName[T any](ctx context.Context, name string, funcs reconcileFuncs[T]) (string, error) {
	matches, err := funcs.list(ctx, name)
	if err != nil {
		return "", fmt.Errorf("failed to list %ss: %w", funcs.what, err)
	}

	switch len(matches) {
	case 0:
		return "", nil
	case 1:
		return funcs.id(&matches[0]), nil
	default:
		return "", fmt.Errorf("lookup of %s named %q is ambiguous: %d matches", funcs.what, name, len(matches))
	}
}

// EnsureNetwork reconciles a network. external marks it as router-external
// when it has to be created.
func EnsureNetwork(ctx context.Context, api NetworkAPI, spec config.NetworkSpec, external bool) (string, error) {
	what := "network"
	if external {
		what = "external network"
	}
	return ensureOrCreate(ctx, spec.Mode(), spec.Name, reconcileFuncs[networks.Network]{
		what: what,
		list: func(ctx context.Context, name string) ([]networks.Network, error) {
			return api.ListNetworks(ctx, name)
		},
		create: func(ctx context.Context) (*networks.Network, error) {
			return api.CreateNetwork(ctx, spec.Name, external)
		},
		id: func(n *networks.Network) string { return n.ID },
	})
}

// EnsureSubnet reconciles the management subnet on the given network.
func EnsureSubnet(ctx context.Context, api SubnetAPI, spec config.SubnetSpec, networkID string) (string, error) {
	return ensureOrCreate(ctx, spec.Mode(), spec.Name, reconcileFuncs[subnets.Subnet]{
		what: "subnet",
		list: func(ctx context.Context, name string) ([]subnets.Subnet, error) {
			return api.ListSubnets(ctx, name)
		},
		create: func(ctx context.Context) (*subnets.Subnet, error) {
			return api.CreateSubnet(ctx, spec.Name, spec.IPVersion, spec.CIDR, networkID)
		},
		id: func(s *subnets.Subnet) string { return s.ID },
	})
}

// EnsureRouter reconciles the management router. A created router gets its
// external gateway pointed at gatewayNetworkID and an interface on subnetID;
// a referenced router is assumed to be wired up already.
func EnsureRouter(ctx context.Context, api RouterAPI, spec config.RouterSpec, gatewayNetworkID, subnetID string) (string, error) {
	return ensureOrCreate(ctx, spec.Mode(), spec.Name, reconcileFuncs[routers.Router]{
		what: "router",
		list: func(ctx context.Context, name string) ([]routers.Router, error) {
			return api.ListRouters(ctx, name)
		},
		create: func(ctx context.Context) (*routers.Router, error) {
			router, err := api.CreateRouter(ctx, spec.Name, gatewayNetworkID)
			if err != nil {
				return nil, err
			}
			if err := api.AddRouterInterface(ctx, router.ID, subnetID); err != nil {
				return nil, fmt.Errorf("failed to attach subnet interface: %w", err)
			}
			return router, nil
		},
		id: func(r *routers.Router) string { return r.ID },
	})
}

// EnsureSecurityGroup reconciles a named security group. Security groups are
// always managed: the bootstrapper owns them and refuses to adopt groups it
// did not create.
func EnsureSecurityGroup(ctx context.Context, api SecurityGroupAPI, name string) (string, error) {
	return ensureOrCreate(ctx, config.ModeManaged, name, reconcileFuncs[groups.SecGroup]{
		what: "security group",
		list: func(ctx context.Context, name string) ([]groups.SecGroup, error) {
			return api.ListSecurityGroups(ctx, name)
		},
		create: func(ctx context.Context) (*groups.SecGroup, error) {
			return api.CreateSecurityGroup(ctx, name)
		},
		id: func(g *groups.SecGroup) string { return g.ID },
	})
}
