package github

// Session holds the user and repository most recently resolved against the
// API. It starts empty, lives only in memory, and is never persisted. Each
// slot is replaced wholesale on a successful call; failed calls leave the
// previous value in place.
type Session struct {
	user       *User
	repository *Repository
}

// NewSession returns an empty session.
func NewSession() *Session {
	return &Session{}
}

// User returns the authenticated user, or nil when no authentication has
// succeeded yet.
func (s *Session) User() *User {
	return s.user
}

// Repository returns the active repository, or nil when none has been
// created or fetched yet.
func (s *Session) Repository() *Repository {
	return s.repository
}

// SetUser replaces the authenticated user.
func (s *Session) SetUser(user *User) {
	s.user = user
}

// SetRepository replaces the active repository.
func (s *Session) SetRepository(repository *Repository) {
	s.repository = repository
}

// Ready reports whether both a user and a repository are present, the
// precondition for uploads and Pages operations.
func (s *Session) Ready() bool {
	return s.user != nil && s.repository != nil
}

// Reset clears both slots.
func (s *Session) Reset() {
	s.user = nil
	s.repository = nil
}
