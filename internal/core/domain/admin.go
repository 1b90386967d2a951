package domain

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Admin is a back-office account. There is no public registration; the
// first admin is seeded from the environment on first boot.
type Admin struct {
	ID           int
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewAdmin creates an admin with the password hashed here, so a plaintext
// password never travels past the domain layer.
func NewAdmin(username, email, password string) (*Admin, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Admin{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}, nil
}

// CheckPassword compares the provided password against the stored hash.
func (a *Admin) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) == nil
}
