package ir

import "errors"

var (
	ErrParse      = errors.New("parse error")
	ErrInline     = errors.New("inline block")
	ErrNoSuchNode = errors.New("no such node")
)
