package config

import "errors"

var (
	ErrParsingConfig     = errors.New("config.parse_failed")
	ErrLoadingEnvFile    = errors.New("config.env_file_load_failed")
	ErrInvalidConfigType = errors.New("config.not_a_struct")
	ErrNilPointer        = errors.New("config.nil_pointer")
)
