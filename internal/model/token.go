package model

// TokenManager issues and validates bearer tokens.
type TokenManager interface {
	Issue(subjectID int64) (string, error)
	Validate(token string) (int64, error)
}

// Session is the result of a successful login.
type Session struct {
	AccessToken string
	TokenType   string
}
