// Package env keeps names of environment variables with special significance
// to calc.
package env

// Environment variables with special significance to calc.
const (
	HOME            = "HOME"
	XDG_CONFIG_HOME = "XDG_CONFIG_HOME"
	XDG_STATE_HOME  = "XDG_STATE_HOME"
)
