package httpapi

import (
	"context"

	"github.com/infinityui/backend/internal/model"
)

type ctxKey string

const sessionKey ctxKey = "iu.session"

// sessionState is what the session middleware learned about the request:
// whether a token cookie was present at all, and the decoded claims when the
// token verified (nil otherwise).
type sessionState struct {
	tokenPresent bool
	claims       *model.SessionClaims
}

// withSession stores the decoded session state in the request context.
func withSession(ctx context.Context, st sessionState) context.Context {
	return context.WithValue(ctx, sessionKey, st)
}

// sessionFromCtx fetches session state; the zero value means no cookie at all.
func sessionFromCtx(ctx context.Context) sessionState {
	st, _ := ctx.Value(sessionKey).(sessionState)
	return st
}

// ClaimsFromCtx returns the verified session claims, if any.
func ClaimsFromCtx(ctx context.Context) (*model.SessionClaims, bool) {
	st := sessionFromCtx(ctx)
	return st.claims, st.claims != nil
}
