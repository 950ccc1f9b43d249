// Package users manages the desk's operator registry: registering operators
// with bcrypt-hashed passwords and listing the registered entries.
package users
