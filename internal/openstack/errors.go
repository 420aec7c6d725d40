package openstack

import (
	"errors"
	"net/http"

	"github.com/gophercloud/gophercloud"
)

// isRetryable reports whether a neutron call is worth repeating. Server-side
// failures and throttling are transient; any 4xx means the request itself is
// wrong and retrying cannot help.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	var unexpected gophercloud.ErrUnexpectedResponseCode
	if errors.As(err, &unexpected) {
		return unexpected.Actual == http.StatusTooManyRequests || unexpected.Actual >= 500
	}

	// Transport-level errors (connection reset, timeout) surface as plain
	// errors and are assumed transient.
	return true
}
