package provisioning

// State holds the shared results of provisioning phases. It is progressively
// populated as each phase completes and is passed to subsequent phases that
// need earlier results.
type State struct {
	NetworkID    string
	SubnetID     string
	ExtNetworkID string
	RouterID     string

	UserSecurityGroupID    string
	ManagerSecurityGroupID string
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
