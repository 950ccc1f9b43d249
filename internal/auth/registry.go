package auth

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

// User is one registry entry.
type User struct {
	// Name is the login name, unique within the registry.
	Name string `yaml:"name"`
	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string `yaml:"password_hash"`
	// MayBook grants the booking privilege.
	MayBook bool `yaml:"may_book"`
}

// registryFile is the on-disk YAML shape of the registry.
type registryFile struct {
	Users []User `yaml:"users"`
}

// Registry is the file-backed user store. It also implements Capability for
// the booking chain's authorization guard.
type Registry struct {
	// path is the YAML file the registry was loaded from and saves to.
	path string
	// users holds entries in registration order.
	users []User
}

const (
	// registryFilePermissions restricts the registry to its owner.
	registryFilePermissions = 0o600

	// dummyHash is compared against when the user is unknown so that
	// lookup misses and password mismatches take similar time.
	dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
)

var (
	// ErrInvalidCredentials is returned for unknown users and wrong
	// passwords alike; callers cannot tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserExists is returned when adding a name already registered.
	ErrUserExists = errors.New("user already exists")

	// errNameRequired is returned when a user name is empty.
	errNameRequired = errors.New("user name must be provided")

	// errPasswordRequired is returned when a password is empty.
	errPasswordRequired = errors.New("password must be provided")
)

// LoadRegistry reads the registry from path. A missing file yields an empty
// registry so the first `users add` can create it.
func LoadRegistry(path string) (*Registry, error) {
	registry := &Registry{
		path: filepath.Clean(path),
	}

	contents, err := os.ReadFile(registry.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return registry, nil
		}

		return nil, fmt.Errorf("read user registry: %w", err)
	}

	var file registryFile
	if err := yaml.Unmarshal(contents, &file); err != nil {
		return nil, fmt.Errorf("unmarshal user registry: %w", err)
	}

	registry.users = file.Users

	return registry, nil
}

// Save writes the registry back to its file with restricted permissions.
func (r *Registry) Save() error {
	data, err := yaml.Marshal(registryFile{Users: r.users})
	if err != nil {
		return fmt.Errorf("marshal user registry: %w", err)
	}

	if err := os.WriteFile(r.path, data, registryFilePermissions); err != nil {
		return fmt.Errorf("write user registry: %w", err)
	}

	return nil
}

// Add registers a new user with a bcrypt-hashed password.
func (r *Registry) Add(name, password string, mayBook bool) error {
	if name == "" {
		return errNameRequired
	}

	if password == "" {
		return errPasswordRequired
	}

	if _, ok := r.lookup(name); ok {
		return fmt.Errorf("%q: %w", name, ErrUserExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	r.users = append(r.users, User{
		Name:         name,
		PasswordHash: string(hash),
		MayBook:      mayBook,
	})

	return nil
}

// Users returns a copy of the registry entries in registration order.
func (r *Registry) Users() []User {
	out := make([]User, len(r.users))
	copy(out, r.users)

	return out
}

// Authenticate verifies the name/password pair and returns the principal.
// Unknown users and wrong passwords both yield ErrInvalidCredentials.
func (r *Registry) Authenticate(name, password string) (Principal, error) {
	user, ok := r.lookup(name)
	if !ok {
		// Burn a comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))

		return Principal{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return Principal{}, ErrInvalidCredentials
	}

	return Principal{Name: user.Name}, nil
}

// MayBook reports whether the principal holds the booking privilege.
// It implements Capability and is consulted on every allocation attempt.
func (r *Registry) MayBook(p Principal) bool {
	user, ok := r.lookup(p.Name)

	return ok && user.MayBook
}

// lookup finds a user by name.
func (r *Registry) lookup(name string) (User, bool) {
	for _, user := range r.users {
		if user.Name == name {
			return user, true
		}
	}

	return User{}, false
}
