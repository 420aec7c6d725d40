// Package config loads and validates the cosmoboot deployment document.
//
// A deployment document has four top-level sections: keystone (identity
// credentials), neutron (network service endpoint), management (target
// topology) and env (local paths and remote account identifiers). Validation
// is a pure function from the raw document to a typed Config; it fails fast
// with the dotted path of the first offending field.
package config
