// Package users implements account registration and authentication.
//
// Registration hashes passwords with bcrypt and relies on the store's unique
// constraints as the authoritative guard against duplicate usernames and
// emails. Login accepts a username or an email, compares in constant time,
// and mints an HS256 JWT on success. ResolveToken is the bridge used by the
// HTTP auth middleware to turn a bearer token into a user.
package users
