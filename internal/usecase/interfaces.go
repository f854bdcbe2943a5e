package usecase

// TokenManager issues and verifies bearer credentials carrying a user
// identity and role.
type TokenManager interface {
	GenerateToken(userID, role string) (string, error)
	VerifyToken(token string) (userID string, role string, err error)
}

// PasswordHasher hashes and checks stored password credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
