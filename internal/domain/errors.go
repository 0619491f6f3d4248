package domain

import "errors"

var (
	// ErrInvalidDate marks a phrase that resolved to no date. Only outer
	// surfaces return it; resolution itself reports invalid moments instead.
	ErrInvalidDate = errors.New("invalid date")

	ErrUnknownSetting   = errors.New("unknown setting")
	ErrUnknownParseMode = errors.New("unknown parse mode")
)
