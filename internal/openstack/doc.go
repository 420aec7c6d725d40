// Package openstack talks to keystone and neutron on behalf of the
// bootstrapper. It authenticates with the configured credentials, pins the
// neutron client to the configured endpoint URL, and reconciles topology
// resources with ensure-or-create semantics: referenced resources must
// already exist, managed resources must not.
package openstack
