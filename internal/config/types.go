package config

// Config is the validated deployment document.
type Config struct {
	Keystone Keystone `mapstructure:"keystone" yaml:"keystone"`
	Neutron  Neutron  `mapstructure:"neutron" yaml:"neutron"`

	Management Management `mapstructure:"management" yaml:"management"`
	Env        Env        `mapstructure:"env" yaml:"env"`
}

// Keystone holds the identity service credentials.
type Keystone struct {
	Username   string `mapstructure:"username" yaml:"username"`
	Password   string `mapstructure:"password" yaml:"password"`
	AuthURL    string `mapstructure:"auth_url" yaml:"auth_url"`
	TenantName string `mapstructure:"tenant_name" yaml:"tenant_name"`
}

// Neutron identifies the network service endpoint. The endpoint is used
// as-is rather than discovered from the service catalog.
type Neutron struct {
	URL string `mapstructure:"url" yaml:"url"`
}

// Management describes the target region and the desired cloud topology.
type Management struct {
	Region string `mapstructure:"region" yaml:"region"`

	Instance Instance `mapstructure:"instance" yaml:"instance"`

	Network    NetworkSpec `mapstructure:"network" yaml:"network"`
	Subnet     SubnetSpec  `mapstructure:"subnet" yaml:"subnet"`
	ExtNetwork NetworkSpec `mapstructure:"ext_network" yaml:"ext_network"`
	Router     RouterSpec  `mapstructure:"router" yaml:"router"`

	SecurityGroupUser    SecurityGroup        `mapstructure:"security_group_user" yaml:"security_group_user"`
	SecurityGroupManager ManagerSecurityGroup `mapstructure:"security_group_manager" yaml:"security_group_manager"`
}

// Instance selects the management VM. All four fields are opaque identifiers
// resolved by the provisioning system; no semantic interpretation is applied.
type Instance struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Image       string `mapstructure:"image" yaml:"image"`
	Flavor      string `mapstructure:"flavor" yaml:"flavor"`
	KeypairName string `mapstructure:"keypair_name" yaml:"keypair_name"`
}

// ProvisionMode is the tagged variant behind the externally_provisioned flag.
type ProvisionMode string

const (
	// ModeReference means the resource already exists and is looked up by name.
	ModeReference ProvisionMode = "reference"
	// ModeManaged means the resource is created; creation fails if a resource
	// with the same name already exists.
	ModeManaged ProvisionMode = "managed"
)

func provisionMode(externallyProvisioned bool) ProvisionMode {
	if externallyProvisioned {
		return ModeReference
	}
	return ModeManaged
}

// NetworkSpec describes a network, either pre-existing or to be created.
type NetworkSpec struct {
	Name                  string `mapstructure:"name" yaml:"name"`
	ExternallyProvisioned bool   `mapstructure:"externally_provisioned" yaml:"externally_provisioned"`
}

// Mode returns the provisioning variant selected by externally_provisioned.
func (s NetworkSpec) Mode() ProvisionMode { return provisionMode(s.ExternallyProvisioned) }

// SubnetSpec describes the management subnet. IPVersion and CIDR are required
// in both modes: they are what a managed create needs, and a referenced subnet
// still carries them for the consuming tool.
type SubnetSpec struct {
	Name                  string `mapstructure:"name" yaml:"name"`
	IPVersion             int    `mapstructure:"ip_version" yaml:"ip_version"`
	CIDR                  string `mapstructure:"cidr" yaml:"cidr"`
	ExternallyProvisioned bool   `mapstructure:"externally_provisioned" yaml:"externally_provisioned"`
}

// Mode returns the provisioning variant selected by externally_provisioned.
func (s SubnetSpec) Mode() ProvisionMode { return provisionMode(s.ExternallyProvisioned) }

// RouterSpec describes the management router.
type RouterSpec struct {
	Name                  string `mapstructure:"name" yaml:"name"`
	ExternallyProvisioned bool   `mapstructure:"externally_provisioned" yaml:"externally_provisioned"`
}

// Mode returns the provisioning variant selected by externally_provisioned.
func (s RouterSpec) Mode() ProvisionMode { return provisionMode(s.ExternallyProvisioned) }

// SecurityGroup is a named access-control grouping.
type SecurityGroup struct {
	Name string `mapstructure:"name" yaml:"name"`
}

// ManagerSecurityGroup additionally restricts access to a source CIDR.
type ManagerSecurityGroup struct {
	Name string `mapstructure:"name" yaml:"name"`
	CIDR string `mapstructure:"cidr" yaml:"cidr"`
}

// Env holds local filesystem paths and remote account identifiers. Path
// fields are validated for non-emptiness only; existence on disk is the
// consumer's concern, since the machine validating the document may not be
// the machine using it.
type Env struct {
	WorkDir              string `mapstructure:"workdir" yaml:"workdir"`
	DSLRelativePath      string `mapstructure:"dsl_relative_path_in_workdir" yaml:"dsl_relative_path_in_workdir"`
	UserOnManagement     string `mapstructure:"user_on_management" yaml:"user_on_management"`
	UserHomeOnManagement string `mapstructure:"userhome_on_management" yaml:"userhome_on_management"`
	ManagementKeyPath    string `mapstructure:"management_key_path" yaml:"management_key_path"`
	AgentsKeyPath        string `mapstructure:"agents_key_path" yaml:"agents_key_path"`
}
