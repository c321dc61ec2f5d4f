package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/permitd/permitd/internal/auth/service"
	"github.com/permitd/permitd/pkg/httpx"
	"github.com/permitd/permitd/pkg/jwtx"
)

// Paths that skip authorization entirely. Prefix-matched,
// case-insensitive. Health probes and the swagger UI must stay reachable
// without a token, as must the endpoints that produce one.
var defaultExcludedPrefixes = []string{
	"/api/account/signin",
	"/api/account/signup",
	"/api/account/forgotpassword",
	"/swagger",
	"/livez",
	"/readyz",
}

// Authorizer is the request interceptor. Every route passes through it;
// anything not on the excluded list needs a valid bearer token and a
// passing decision from the engine. On success the resolved user id and
// live roles land in the request context.
type Authorizer struct {
	Verifier jwtx.Verifier
	Authz    *service.AuthzService

	// Excluded overrides the default prefix list when non-nil.
	Excluded []string
}

func (a *Authorizer) Middleware() httpx.Middleware {
	excluded := a.Excluded
	if excluded == nil {
		excluded = defaultExcludedPrefixes
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			for _, prefix := range excluded {
				if hasPrefixFold(path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			raw, ok := httpx.BearerToken(r)
			if !ok {
				writeDenial(w, http.StatusUnauthorized, service.MsgAuthRequired)
				return
			}

			claims, err := a.Verifier.Verify(raw)
			if err != nil {
				writeDenial(w, http.StatusUnauthorized, service.MsgAuthRequired)
				return
			}

			d := a.Authz.Authorize(r.Context(), claims.Subject, path, r.Method)
			if !d.Allowed {
				writeDenial(w, d.Status, d.Message)
				return
			}

			ctx := httpx.WithIdentity(r.Context(), d.UserID, d.Roles)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAnyRole is a static per-route gate layered on top of the
// engine. It reads the roles the Authorizer resolved into the context,
// so it sees revocations immediately.
func RequireAnyRole(roles ...string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if httpx.UserIDFromCtx(r.Context()) == "" {
				writeDenial(w, http.StatusUnauthorized, service.MsgAuthRequired)
				return
			}
			held := httpx.RolesFromCtx(r.Context())
			for _, want := range roles {
				if slices.Contains(held, want) {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeDenial(w, http.StatusForbidden, service.MsgForbidden)
		})
	}
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
