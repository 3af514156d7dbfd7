package controllers

import "Backend-Blueview/src/config"

var cfg *config.Config

// SetConfig installs the loaded config for handlers that talk to external
// services. Called once from main before routes are mounted.
func SetConfig(c *config.Config) {
	cfg = c
}
