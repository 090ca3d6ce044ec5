// utils/admincreds.go
package utils

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// AdminStore maps admin identities to bcrypt-hashed credentials. Checks run
// through bcrypt so a login attempt costs the same whether or not the email
// exists.
type AdminStore struct {
	creds map[string][]byte
	dummy []byte
}

// NewAdminStore returns an empty credential store.
func NewAdminStore() *AdminStore {
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-password"), bcrypt.DefaultCost)
	return &AdminStore{
		creds: make(map[string][]byte),
		dummy: dummy,
	}
}

// Add registers an admin identity with a plaintext password, which is hashed
// before storage.
func (s *AdminStore) Add(email, password string) error {
	if email == "" || password == "" {
		return errors.New("admin email and password are required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.creds[email] = hash
	return nil
}

// Check verifies an admin credential. Unknown emails still perform one
// bcrypt comparison against a dummy hash.
func (s *AdminStore) Check(email, password string) bool {
	hash, ok := s.creds[email]
	if !ok {
		bcrypt.CompareHashAndPassword(s.dummy, []byte(password))
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}
