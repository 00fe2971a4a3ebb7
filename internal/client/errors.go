package client

import "errors"

var (
	ErrNoCommand        = errors.New("no command given")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingArgument  = errors.New("missing argument")
	ErrBackupIncomplete = errors.New("backup is incomplete")
	ErrNothingToWatch   = errors.New("no totp entries to watch")
)
