package biz

import "time"

type CtxKey string

const (
	SESSION_KEY CtxKey = "shopper_session"

	SESSIONCOOKIE = "walmate_session"
	SESSIONHEADER = "X-Walmate-Session"

	SessionExpire = time.Hour * 24

	// TOKENKEY is the well-known storage key of the bearer token.
	TOKENKEY = "token"

	PlaceholderImage = "/placeholder-product.jpg"
)
