package password

import "golang.org/x/crypto/bcrypt"

const hashCost = bcrypt.DefaultCost

// Hash derives a bcrypt hash for storage.
func Hash(plain string) (string, error) {
	out, err := bcrypt.GenerateFromPassword([]byte(plain), hashCost)
	return string(out), err
}

// Compare returns nil when plain matches the stored hash.
func Compare(hash, plain string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
