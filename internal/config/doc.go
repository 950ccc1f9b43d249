// Package config defines reception desk settings used by the hotel-desk
// commands and provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the managed room count and the locations of the audit
// trail and the user registry.
package config
