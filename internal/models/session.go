package models

// Session is the device-local record of who is signed in.
type Session struct {
	Token       string `json:"-"`
	UserID      string `json:"userId,omitempty"`
	DisplayName string `json:"nickname,omitempty"`
	FullName    string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
}

// SignedIn reports whether both a token and a display name are present.
// A partial session never counts as signed in.
func (s Session) SignedIn() bool {
	return s.Token != "" && s.DisplayName != ""
}
