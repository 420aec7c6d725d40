package config

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/huh"
)

// nameRegex restricts deployment names to DNS-safe identifiers so that the
// derived resource names are accepted by the cloud APIs.
var nameRegex = regexp.MustCompile(`^[a-z][a-z0-9-]*[a-z0-9]$`)

// WizardResult holds the user's answers from the init wizard.
type WizardResult struct {
	Name       string
	Username   string
	Password   string
	AuthURL    string
	TenantName string
	NeutronURL string
	Region     string
	Image      string
	Flavor     string
	SubnetCIDR string
	User       string
}

// RunWizard collects the minimum answers needed to write a starter deployment
// document. Everything else is derived from the deployment name.
func RunWizard(ctx context.Context) (*WizardResult, error) {
	result := &WizardResult{
		SubnetCIDR: "10.67.79.0/24",
		User:       "ubuntu",
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Deployment name").
				Description("Used as the prefix for all managed resources").
				Placeholder("cosmo").
				Value(&result.Name).
				Validate(validateDeploymentName),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Keystone username").
				Value(&result.Username).
				Validate(notEmpty("username")),
			huh.NewInput().
				Title("Keystone password").
				EchoMode(huh.EchoModePassword).
				Value(&result.Password).
				Validate(notEmpty("password")),
			huh.NewInput().
				Title("Keystone auth URL").
				Placeholder("https://keystone.example.com:5000/v2.0/").
				Value(&result.AuthURL).
				Validate(validateEndpointURL),
			huh.NewInput().
				Title("Tenant name").
				Value(&result.TenantName).
				Validate(notEmpty("tenant name")),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Neutron endpoint URL").
				Placeholder("https://neutron.example.com:9696/").
				Value(&result.NeutronURL).
				Validate(validateEndpointURL),
			huh.NewInput().
				Title("Region").
				Value(&result.Region).
				Validate(notEmpty("region")),
		),

		huh.NewGroup(
			huh.NewInput().
				Title("Image identifier").
				Description("Opaque image ID for the management instance").
				Value(&result.Image).
				Validate(notEmpty("image")),
			huh.NewInput().
				Title("Flavor identifier").
				Description("Opaque flavor ID for the management instance").
				Value(&result.Flavor).
				Validate(notEmpty("flavor")),
			huh.NewInput().
				Title("Management subnet CIDR").
				Value(&result.SubnetCIDR).
				Validate(validateWizardCIDR),
			huh.NewInput().
				Title("User on the management instance").
				Value(&result.User).
				Validate(notEmpty("user")),
		),
	)

	if err := form.RunWithContext(ctx); err != nil {
		return nil, err
	}
	return result, nil
}

// ToConfig expands the wizard answers into a full deployment document. All
// topology records default to managed mode; users referencing pre-existing
// resources flip externally_provisioned by hand afterwards.
func (r *WizardResult) ToConfig() *Config {
	home := "/home/" + r.User
	return &Config{
		Keystone: Keystone{
			Username:   r.Username,
			Password:   r.Password,
			AuthURL:    r.AuthURL,
			TenantName: r.TenantName,
		},
		Neutron: Neutron{URL: r.NeutronURL},
		Management: Management{
			Region: r.Region,
			Instance: Instance{
				Name:        r.Name + "-manager",
				Image:       r.Image,
				Flavor:      r.Flavor,
				KeypairName: r.Name + "-manager-kp",
			},
			Network: NetworkSpec{Name: r.Name + "-network"},
			Subnet: SubnetSpec{
				Name:      r.Name + "-subnet",
				IPVersion: 4,
				CIDR:      r.SubnetCIDR,
			},
			ExtNetwork:           NetworkSpec{Name: r.Name + "-ext-network"},
			Router:               RouterSpec{Name: r.Name + "-router"},
			SecurityGroupUser:    SecurityGroup{Name: r.Name + "-sg-user"},
			SecurityGroupManager: ManagerSecurityGroup{Name: r.Name + "-sg-manager", CIDR: "0.0.0.0/0"},
		},
		Env: Env{
			WorkDir:              home + "/" + r.Name + "-work",
			DSLRelativePath:      "cosmo-dsl/management.yaml",
			UserOnManagement:     r.User,
			UserHomeOnManagement: home,
			ManagementKeyPath:    home + "/.ssh/" + r.Name + "-manager.pem",
			AgentsKeyPath:        home + "/.ssh/" + r.Name + "-agents.pem",
		},
	}
}

func validateDeploymentName(s string) error {
	if s == "" {
		return fmt.Errorf("deployment name is required")
	}
	if len(s) > 32 {
		return fmt.Errorf("deployment name must be 32 characters or fewer")
	}
	if !nameRegex.MatchString(s) {
		return fmt.Errorf("deployment name must be lowercase alphanumeric with hyphens, starting with a letter")
	}
	return nil
}

func validateEndpointURL(s string) error {
	if s == "" {
		return fmt.Errorf("URL is required")
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

func validateWizardCIDR(s string) error {
	doc := map[string]interface{}{"cidr": s}
	if err := checkCIDR(doc, "subnet"); err != nil {
		return fmt.Errorf("not a valid IPv4 CIDR")
	}
	return nil
}

func notEmpty(what string) func(string) error {
	return func(s string) error {
		if s == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
