// Package desk runs the interactive reception desk session: it loads
// settings, enforces the single-session rule, logs the operator in, wires
// the booking chain over the hotel, and drives the line-oriented command
// surface until the operator ends the session.
package desk
