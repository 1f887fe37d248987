package sandbox

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

const (
	AuthTokenHeader = "x-sabre-auth-token"

	tokenIssuer   = "reservations-sandbox"
	tokenLifetime = time.Hour
)

var ErrorInvalidCredentials = errors.New("invalid client credentials")

type tokenParams struct {
	GrantType string `form:"grant_type" binding:"required,eq=client_credentials"`
	Scope     string `form:"scope"`
	Audience  string `form:"audience" binding:"required"`
}

type tokenClaims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// IssueToken answers a client credentials grant with a signed JWT.
func (s *Sandbox) IssueToken(c *gin.Context) {
	clientID, err := basicClientID(c.GetHeader("Authorization"))
	if err != nil {
		web.HandleError(c, http.StatusUnauthorized, "Invalid client", err)
		return
	}

	var params tokenParams
	err = c.ShouldBind(&params)
	if err != nil {
		web.HandleError(c, http.StatusBadRequest, "Invalid token request", err)
		return
	}

	now := s.now()
	claims := tokenClaims{
		Scope: params.Scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   clientID,
			Audience:  jwt.ClaimStrings{params.Audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenLifetime)),
			ID:        uuid.New().String(),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.signingKey)
	if err != nil {
		web.HandleError(c, http.StatusInternalServerError, "Unable to sign token", err)
		return
	}

	c.JSON(http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(tokenLifetime.Seconds()),
	})
}

// RequireToken rejects requests without a valid sandbox token.
func (s *Sandbox) RequireToken(c *gin.Context) {
	raw := c.GetHeader(AuthTokenHeader)
	if raw == "" {
		web.HandleError(c, http.StatusUnauthorized, "Missing auth token", nil)
		return
	}

	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		return s.signingKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		web.HandleError(c, http.StatusUnauthorized, "Invalid auth token", err)
		return
	}

	c.Set("tokenSubject", claims.Subject)
}

func basicClientID(header string) (string, error) {
	encoded, ok := strings.CutPrefix(header, "Basic ")
	if !ok {
		return "", ErrorInvalidCredentials
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", ErrorInvalidCredentials
	}

	clientID, secret, ok := strings.Cut(string(decoded), ":")
	if !ok || clientID == "" || secret == "" {
		return "", ErrorInvalidCredentials
	}

	return clientID, nil
}
