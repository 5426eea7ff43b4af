package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes an admin password with bcrypt at the default cost.
// The original product stored passwords in cleartext; that never survives
// a reimplementation.
func HashPassword(plain string) (string, error) {
    hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
    if err != nil {
        return "", err
    }
    return string(hashed), nil
}

func CheckPassword(hashed, plain string) bool {
    return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain)) == nil
}
