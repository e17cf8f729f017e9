package ir

import "errors"

// ErrPathSyntax is the cause of every error returned by ParsePath.
var ErrPathSyntax = errors.New("path syntax error")
