package entity

// UserInfo is the cached login state. The token is an opaque bearer token
// attached to every backend request while present.
type UserInfo struct {
	Token    string `json:"token"`
	OpenID   string `json:"openId,omitempty"`
	Nickname string `json:"nickname,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// LoggedIn reports whether the user holds a usable token.
func (u *UserInfo) LoggedIn() bool {
	return u != nil && u.Token != ""
}
