package auth

import "strings"

// DefaultRole is assigned to every user created by the service.
const DefaultRole = "HR Manager"

// User is the signed-in identity kept by the session store.
type User struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Avatar       string   `json:"avatar,omitempty"`
	Role         string   `json:"role"`
	AuthProvider Provider `json:"authProvider"`
}

type Provider string

const (
	ProviderEmail     Provider = "email"
	ProviderGoogle    Provider = "google"
	ProviderGitHub    Provider = "github"
	ProviderMicrosoft Provider = "microsoft"
)

// SocialProviders lists the providers offered on the login screen, in display order.
var SocialProviders = []Provider{ProviderGoogle, ProviderGitHub, ProviderMicrosoft}

// ParseSocialProvider accepts the providers registered with goth; email
// sign-in goes through credentials.
func ParseSocialProvider(s string) (Provider, error) {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	if _, err := lookup(p); err != nil {
		return "", err
	}
	return p, nil
}

// Social reports whether p resolves to a registered social provider.
func (p Provider) Social() bool {
	_, err := lookup(p)
	return err == nil
}

func (p Provider) Label() string {
	switch p {
	case ProviderGoogle:
		return "Google"
	case ProviderGitHub:
		return "GitHub"
	case ProviderMicrosoft:
		return "Microsoft"
	default:
		return "Email"
	}
}
