package service

import (
	"time"

	"github.com/permitd/permitd/internal/auth/domain"
	"github.com/permitd/permitd/pkg/jwtx"
)

type TokenService struct {
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
}

// Issue signs an access token for the user. The roles claim is a
// snapshot for client display; server-side decisions always re-resolve
// roles from the store.
func (s *TokenService) Issue(u domain.User, roles []string) (string, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}
	claims := jwtx.NewAccessClaims(
		u.ID,       // subject
		u.Email,    // email
		u.UserName, // display name
		roles,      // role snapshot
		ttl,        // token lifetime
		s.Issuer,   // issuer (audience = issuer)
		time.Now().UTC(),
	)
	return s.Signer.Sign(claims)
}
