package config

import "errors"

// ErrInvalidConfig wraps every rejected setting; the message names the key.
var ErrInvalidConfig = errors.New("invalid configuration")

// ErrLoadConfig wraps failures reading the .env file, the YAML file named
// by ELO_CONFIG, or the environment.
var ErrLoadConfig = errors.New("cannot load configuration")
