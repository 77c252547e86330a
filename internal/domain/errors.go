package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrMissingCredentials = errors.New("username and password are required")
	ErrBadCredentials     = errors.New("invalid username or password")
	ErrSettingNotFound    = errors.New("setting not found")
	ErrSettingCorrupt     = errors.New("setting data is not valid JSON")
)
