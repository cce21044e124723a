package models

import "strings"

// Credential is what the login form produces. Real authentication is an
// external concern; the core only requires a display name.
type Credential struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Session is the authenticated identity. The rest of the core is only
// reachable while one exists.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Profile is the editable personal-information view of a session.
type Profile struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Profile splits the display name into its editable parts.
func (s Session) Profile() Profile {
	first, last := splitName(s.Name)
	return Profile{FirstName: first, LastName: last, Email: s.Email}
}

// DisplayName joins the profile back into a session display name.
func (p Profile) DisplayName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Initials returns the avatar initials, upper-cased.
func (p Profile) Initials() string {
	var b strings.Builder
	if p.FirstName != "" {
		b.WriteString(strings.ToUpper(p.FirstName[:1]))
	}
	if p.LastName != "" {
		b.WriteString(strings.ToUpper(p.LastName[:1]))
	}
	return b.String()
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}
