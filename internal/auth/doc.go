// Package auth provides token-based authentication for taskdeck.
//
// # Tokens
//
// Users authenticate with HS256-signed JWTs carrying the user ID in the
// "sub" claim plus issued-at and expiry timestamps. Tokens are signed with
// the configured jwt_secret, loaded once at startup:
//
//	verifier, err := auth.NewJWTVerifier(secret)
//	token, err := verifier.Generate(userID, 24*time.Hour)
//	userID, err := verifier.Verify(token)
//
// Verification failures are classified as ErrMalformedToken, ErrBadSignature,
// or ErrExpiredToken. Tokens are bearer credentials with a fixed lifetime;
// there is no server-side session state and no revocation list.
//
// # Request Middleware
//
// Middleware extracts the bearer token from the Authorization header,
// resolves it to a user, and attaches an AuthContext to the request context.
// It never rejects a request itself: a missing or invalid token leaves the
// request anonymous and the protected endpoint returns 401 when it finds no
// AuthContext. Handlers read the identity with FromContext.
package auth
