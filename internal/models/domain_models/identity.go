package domain_models

// GuestName is rendered wherever a screen was opened without an identity.
const GuestName = "Guest"

// IdentityContext is the signed-in user's display name and email. It is a
// value: every route receives its own copy and nothing mutates it after login.
type IdentityContext struct {
	Name  string `json:"userName"`
	Email string `json:"email"`
}

// OrGuest applies the fallback policy for a missing identity: name becomes
// "Guest" and email stays empty.
func (i IdentityContext) OrGuest() IdentityContext {
	if i.Name == "" {
		i.Name = GuestName
	}
	return i
}
