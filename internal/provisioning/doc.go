// Package provisioning runs the bootstrap as a sequence of phases sharing a
// Context. Each phase records the IDs of the resources it reconciled into the
// State so later phases (and the caller) can use them.
package provisioning
