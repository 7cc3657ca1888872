package domain

import "strings"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// AdminSenderID is the sentinel sender id on every admin-authored message.
// The deployment has a single operator, so no per-admin id is needed.
const AdminSenderID = "admin"

type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (i *Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// DeriveID maps an email to a stable identity id: lowercased, every rune
// outside [a-z0-9] replaced by '-'. Deterministic so repeat logins land in
// the same support thread, but not unique: similar emails collide.
func DeriveID(email string) string {
	lower := strings.ToLower(email)
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('-')
		}
	}
	return b.String()
}

// DeriveRole grants admin to any email containing "admin". Demo-grade by
// intent; a real deployment would issue the role claim externally.
func DeriveRole(email string) Role {
	if strings.Contains(strings.ToLower(email), "admin") {
		return RoleAdmin
	}
	return RoleUser
}
