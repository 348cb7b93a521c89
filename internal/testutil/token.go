package testutil

// FixedTokenGenerator generates the same session token every time.
//
// This keeps transcripts and golden files byte-identical across runs.
// It satisfies session.TokenGenerator.
type FixedTokenGenerator struct {
	token string
}

// NewFixedTokenGenerator creates a fixed session token generator.
//
// If token is empty, Generate() returns "test-session-default".
func NewFixedTokenGenerator(token string) *FixedTokenGenerator {
	if token == "" {
		token = "test-session-default"
	}
	return &FixedTokenGenerator{token: token}
}

// Generate returns the fixed token.
func (g *FixedTokenGenerator) Generate() string {
	return g.token
}
