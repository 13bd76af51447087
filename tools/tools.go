//go:build tools

// Package tools tracks the code generators used by go:generate directives.
package tools

import (
	_ "github.com/maxbrunsfeld/counterfeiter/v6"
)
