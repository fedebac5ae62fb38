package client

import "errors"

var ErrNoHost = errors.New("daemon host not set")
