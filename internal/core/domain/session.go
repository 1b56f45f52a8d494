package domain

// Session pairs the bearer credential with the profile it belongs to.
type Session struct {
	Token   string      `json:"-"`
	Profile UserProfile `json:"user"`
}

// Valid reports whether both halves of the session are present.
func (s Session) Valid() bool {
	return s.Token != "" && s.Profile != (UserProfile{})
}
