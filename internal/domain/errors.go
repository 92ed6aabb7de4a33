package domain

import "errors"

var (
	ErrMissingCredentials  = errors.New("bot token and server id are required")
	ErrConnection          = errors.New("connection failed")
	ErrContentProvider     = errors.New("content provider request failed")
	ErrMalformedContent    = errors.New("malformed content provider response")
	ErrBusy                = errors.New("another operation is in flight")
	ErrNotConnected        = errors.New("session is not connected")
	ErrNotArmed            = errors.New("operation is not armed")
	ErrOperationInProgress = errors.New("operation is executing")
	ErrSettingsNotFound    = errors.New("settings not found")
	ErrSecretNotFound      = errors.New("secret not found")
)
