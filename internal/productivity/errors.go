package productivity

import "errors"

var (
	ErrMissingCredential = errors.New("no access token for the productivity API")
	ErrFetchFailed       = errors.New("failed to fetch productivity data")
)
