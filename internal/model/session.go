package model

// Session is what survives between runs. It only counts as signed in when
// both the credential and the user are present.
type Session struct {
	Credential string `json:"credential"`
	User       *User  `json:"user"`
}

func (s *Session) Complete() bool {
	return s != nil && s.Credential != "" && s.User != nil && s.User.ID != 0
}
