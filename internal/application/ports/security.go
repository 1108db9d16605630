package ports

// PasswordHasher hashes and verifies passwords with a deliberately slow,
// salted, adaptive function. Implementations never log or persist the
// plaintext.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}

// TokenGenerator produces opaque, URL-safe random strings with at least
// 128 bits of entropy, used for sessions and single-use
// verification/reset tokens. Tokens carry no structure; validity is
// decided purely by store lookup.
type TokenGenerator interface {
	Generate() (string, error)
}
