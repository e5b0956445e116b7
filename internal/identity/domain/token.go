package domain

// TokenPair is what a successful sign-in yields: a short-lived access token
// and a 7-day refresh token, both minted from the same {sub, email} claim
// set. Neither is recorded server-side; possession is authorization.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// UserPage is one page of identity records plus the pagination envelope.
type UserPage struct {
	Users      []PublicUser
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}
