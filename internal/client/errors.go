package client

import "errors"

var errAppNotConfigured = errors.New("client app requires services and a terminal ui")
