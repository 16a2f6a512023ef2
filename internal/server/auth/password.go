package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used unless configuration overrides it.
const DefaultCost = 12

// PasswordHasher hashes and verifies agent passwords with bcrypt. The cost
// is fixed at construction; every generated blob embeds algorithm, cost, and
// salt, so verification stays self-describing if the cost is raised later.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) (*PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &PasswordHasher{cost: cost}, nil
}

// Hash produces a bcrypt blob with a fresh random salt.
func (h *PasswordHasher) Hash(senha string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(senha), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Verify reports whether senha matches the stored blob. A mismatch returns
// (false, nil); an error is returned only for a malformed blob, which signals
// data corruption rather than a wrong password. The comparison inside bcrypt
// is constant-time.
func (h *PasswordHasher) Verify(senha, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
