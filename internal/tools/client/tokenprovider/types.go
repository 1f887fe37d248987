package tokenprovider

import "github.com/golang-jwt/jwt/v4"

const (
	AuthTokenHeader     = "x-sabre-auth-token"
	RequestIDHeader     = "x-request-id"
	CorrelationIDHeader = "x-correlation-id"

	correlationIDPrefix = "E2E-AUTO-"
)

type Credentials struct {
	TokenURL    string
	Base64Token string
	Audience    string
}

type tokenForm struct {
	GrantType string `url:"grant_type"`
	Scope     string `url:"scope"`
	Audience  string `url:"audience"`
}

type tokenRS struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type parsedClaims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}
