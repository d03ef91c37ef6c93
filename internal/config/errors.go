package config

import "errors"

var (
	ErrSettingsInvalid = errors.New("invalid settings")
	ErrLocaleInvalid   = errors.New("invalid locale")
	ErrLocked          = errors.New("configuration is locked by another process")
)
