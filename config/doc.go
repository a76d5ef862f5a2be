// Package config loads and validates the settings of one maze run.
//
// Values come from Default, then an optional YAML file (Load), then command
// line flags applied by the caller. Validate runs last and uses
// go-playground/validator struct tags.
//
// Example file:
//
//	height: 12
//	width: 30
//	seed: 42
//	mazeDelay: 1ms
//	pathDelay: 80ms
//	color: false
package config
