// Package auth resolves who is operating the reception desk and whether they
// may book rooms.
//
// A Principal is established once at login and travels on the context; the
// booking chain's authorization guard reads it back on every call. The user
// registry is a YAML file holding bcrypt password hashes, and doubles as the
// Capability provider consulted by the guard.
package auth
