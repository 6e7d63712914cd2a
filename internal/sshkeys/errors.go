package sshkeys

import "errors"

var (
	ErrNoUsableKey           = errors.New("no usable private key")
	ErrNoKeyCandidates       = errors.New("no private key candidates to try")
	ErrExplicitKeyUnreadable = errors.New("private key is not readable")
)
