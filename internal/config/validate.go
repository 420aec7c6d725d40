package config

import (
	"fmt"
	"net"
	"net/url"

	"github.com/mitchellh/mapstructure"
)

// Validate checks a raw document against the schema and returns the typed
// configuration. It is a pure function: no I/O, no retries, no partial
// success. The first violation is returned as a *FieldError carrying the
// dotted path of the offending field.
func Validate(doc map[string]interface{}) (*Config, error) {
	w := walker{doc: doc}

	ks, err := w.section("keystone")
	if err != nil {
		return nil, err
	}
	if err := checkKeystone(ks); err != nil {
		return nil, err
	}

	nt, err := w.section("neutron")
	if err != nil {
		return nil, err
	}
	if _, err := requireURL(nt, "neutron", "url"); err != nil {
		return nil, err
	}

	mg, err := w.section("management")
	if err != nil {
		return nil, err
	}
	if err := checkManagement(mg); err != nil {
		return nil, err
	}

	env, err := w.section("env")
	if err != nil {
		return nil, err
	}
	if err := checkEnv(env); err != nil {
		return nil, err
	}

	var cfg Config
	if err := mapstructure.Decode(doc, &cfg); err != nil {
		return nil, malformedDocument(fmt.Sprintf("cannot decode document: %v", err))
	}
	return &cfg, nil
}

func checkKeystone(ks map[string]interface{}) error {
	for _, key := range []string{"username", "password"} {
		if _, err := requireString(ks, "keystone", key); err != nil {
			return err
		}
	}
	if _, err := requireURL(ks, "keystone", "auth_url"); err != nil {
		return err
	}
	_, err := requireString(ks, "keystone", "tenant_name")
	return err
}

func checkManagement(mg map[string]interface{}) error {
	if _, err := requireString(mg, "management", "region"); err != nil {
		return err
	}

	inst, err := requireMap(mg, "management", "instance")
	if err != nil {
		return err
	}
	for _, key := range []string{"name", "image", "flavor", "keypair_name"} {
		if _, err := requireString(inst, "management.instance", key); err != nil {
			return err
		}
	}

	if err := checkResource(mg, "network"); err != nil {
		return err
	}
	if err := checkSubnet(mg); err != nil {
		return err
	}
	if err := checkResource(mg, "ext_network"); err != nil {
		return err
	}
	if err := checkResource(mg, "router"); err != nil {
		return err
	}

	sgu, err := requireMap(mg, "management", "security_group_user")
	if err != nil {
		return err
	}
	if _, err := requireString(sgu, "management.security_group_user", "name"); err != nil {
		return err
	}

	sgm, err := requireMap(mg, "management", "security_group_manager")
	if err != nil {
		return err
	}
	if _, err := requireString(sgm, "management.security_group_manager", "name"); err != nil {
		return err
	}
	return checkCIDR(sgm, "management.security_group_manager")
}

// checkResource validates the shared shape of network, ext_network and
// router records: a name plus the externally_provisioned discriminator.
func checkResource(mg map[string]interface{}, key string) error {
	parent := "management." + key
	rec, err := requireMap(mg, "management", key)
	if err != nil {
		return err
	}
	if _, err := requireString(rec, parent, "name"); err != nil {
		return err
	}
	return requireBool(rec, parent, "externally_provisioned")
}

func checkSubnet(mg map[string]interface{}) error {
	const parent = "management.subnet"
	rec, err := requireMap(mg, "management", "subnet")
	if err != nil {
		return err
	}
	if _, err := requireString(rec, parent, "name"); err != nil {
		return err
	}
	if err := requireIPVersion(rec, parent); err != nil {
		return err
	}
	if err := checkCIDR(rec, parent); err != nil {
		return err
	}
	return requireBool(rec, parent, "externally_provisioned")
}

func checkEnv(env map[string]interface{}) error {
	keys := []string{
		"workdir",
		"dsl_relative_path_in_workdir",
		"user_on_management",
		"userhome_on_management",
		"management_key_path",
		"agents_key_path",
	}
	for _, key := range keys {
		if _, err := requireString(env, "env", key); err != nil {
			return err
		}
	}
	return nil
}

// walker locates top-level sections of the raw document.
type walker struct {
	doc map[string]interface{}
}

func (w walker) section(name string) (map[string]interface{}, error) {
	raw, ok := w.doc[name]
	if !ok {
		return nil, missingField(name)
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, invalidValue(name, fmt.Sprintf("expected a mapping, got %T", raw))
	}
	return m, nil
}

func requireMap(parent map[string]interface{}, parentPath, key string) (map[string]interface{}, error) {
	path := parentPath + "." + key
	raw, ok := parent[key]
	if !ok {
		return nil, missingField(path)
	}
	m, ok := raw.(map[string]interface{})
	if !ok {
		return nil, invalidValue(path, fmt.Sprintf("expected a mapping, got %T", raw))
	}
	return m, nil
}

func requireString(parent map[string]interface{}, parentPath, key string) (string, error) {
	path := parentPath + "." + key
	raw, ok := parent[key]
	if !ok {
		return "", missingField(path)
	}
	s, ok := raw.(string)
	if !ok {
		return "", invalidValue(path, fmt.Sprintf("expected a string, got %T", raw))
	}
	if s == "" {
		return "", invalidValue(path, "must not be empty")
	}
	return s, nil
}

func requireURL(parent map[string]interface{}, parentPath, key string) (string, error) {
	s, err := requireString(parent, parentPath, key)
	if err != nil {
		return "", err
	}
	path := parentPath + "." + key
	u, perr := url.Parse(s)
	if perr != nil {
		return "", invalidValue(path, fmt.Sprintf("not a valid URL: %v", perr))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", invalidValue(path, fmt.Sprintf("URL scheme must be http or https, got %q", u.Scheme))
	}
	if u.Host == "" {
		return "", invalidValue(path, "URL has no host")
	}
	return s, nil
}

func requireBool(parent map[string]interface{}, parentPath, key string) error {
	path := parentPath + "." + key
	raw, ok := parent[key]
	if !ok {
		return missingField(path)
	}
	if _, ok := raw.(bool); !ok {
		return invalidValue(path, fmt.Sprintf("expected a boolean, got %T", raw))
	}
	return nil
}

func requireIPVersion(parent map[string]interface{}, parentPath string) error {
	path := parentPath + ".ip_version"
	raw, ok := parent["ip_version"]
	if !ok {
		return missingField(path)
	}
	v, ok := intValue(raw)
	if !ok {
		return invalidValue(path, fmt.Sprintf("expected an integer, got %T", raw))
	}
	if v != 4 && v != 6 {
		return invalidValue(path, fmt.Sprintf("must be 4 or 6, got %d", v))
	}
	return nil
}

func checkCIDR(parent map[string]interface{}, parentPath string) error {
	s, err := requireString(parent, parentPath, "cidr")
	if err != nil {
		return err
	}
	path := parentPath + ".cidr"
	ip, _, perr := net.ParseCIDR(s)
	if perr != nil {
		return invalidValue(path, fmt.Sprintf("not valid CIDR notation: %v", perr))
	}
	if ip.To4() == nil {
		return invalidValue(path, "must be an IPv4 range")
	}
	return nil
}

// intValue normalizes the integer representations the YAML and JSON parsers
// produce for numeric scalars.
func intValue(raw interface{}) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), true
	case float64:
		if v == float64(int(v)) {
			return int(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}
