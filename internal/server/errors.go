package server

import "errors"

// errNoServersAreCreated means neither transport has both a handler and a
// listen address.
var errNoServersAreCreated = errors.New("no transport is configured to serve")
