package entity

import "slices"

// AuthorityPrefix is prepended to an account role to form a granted authority,
// e.g. role "USER" becomes authority "ROLE_USER".
const AuthorityPrefix = "ROLE_"

// Principal is the authenticated identity for a single request. It is
// constructed by the auth middleware after token validation and lives only
// for the duration of that request.
type Principal struct {
	UserID      int64
	Username    string
	Authorities []string
}

// NewPrincipal builds a Principal for an account, deriving its authorities
// from the account role.
func NewPrincipal(account *Account) *Principal {
	return &Principal{
		UserID:      account.ID,
		Username:    account.Username,
		Authorities: []string{AuthorityPrefix + account.Role},
	}
}

// HasAuthority reports whether the principal was granted the given authority.
func (p *Principal) HasAuthority(authority string) bool {
	return slices.Contains(p.Authorities, authority)
}
