package tokenprovider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"bitbucket.org/crgw/reservations-e2e/internal/schema"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/caching"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/client"
	"bitbucket.org/crgw/reservations-e2e/internal/tools/requesting"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/go-querystring/query"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// expirySkew is subtracted from the token lifetime so a cached token is never
// handed out in its last seconds.
const expirySkew = 30 * time.Second

type Provider struct {
	credentials Credentials
	httpClient  *http.Client
	cache       *caching.Cacher
	logger      *zerolog.Logger
	userAgent   string
	now         func() time.Time
	newID       func() string
}

func New(credentials Credentials, cache *caching.Cacher, logger *zerolog.Logger, optionFuncs ...client.OptionFunc) *Provider {
	options := client.NewOptions(optionFuncs...)

	if cache == nil {
		cache = caching.NewMemoryCache()
	}

	return &Provider{
		credentials: credentials,
		httpClient:  requesting.NewClient(options.Transport(), options.Timeout(), logger, nil),
		cache:       cache.WithPrefix("token:"),
		logger:      logger,
		userAgent:   fmt.Sprintf("token-provider via %s", options.Name()),
		now:         time.Now,
		newID:       func() string { return uuid.New().String() },
	}
}

// Headers returns the auth headers of one request. Request and correlation ids
// are fresh on every call, the access token is reused while it is valid.
func (p *Provider) Headers(ctx context.Context) (map[string]string, error) {
	token, err := p.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]string{
		AuthTokenHeader:     token,
		RequestIDHeader:     p.newID(),
		CorrelationIDHeader: correlationIDPrefix + p.newID(),
	}, nil
}

func (p *Provider) AccessToken(ctx context.Context) (string, error) {
	var cached string
	if p.cache.Fetch(ctx, p.cacheKey(), &cached) {
		return cached, nil
	}

	rs, err := p.requestToken(ctx)
	if err != nil {
		return "", err
	}

	ttl := p.tokenTTL(rs)
	if ttl > 0 {
		err = p.cache.Store(ctx, p.cacheKey(), rs.AccessToken, ttl)
		if err != nil {
			p.logger.Warn().Err(err).Msg("Unable to cache access token")
		}
	}

	return rs.AccessToken, nil
}

func (p *Provider) requestToken(ctx context.Context) (tokenRS, error) {
	form, err := query.Values(tokenForm{
		GrantType: "client_credentials",
		Scope:     "api",
		Audience:  p.credentials.Audience,
	})
	if err != nil {
		return tokenRS{}, err
	}

	c := context.WithValue(ctx, schema.RequestingStepKey, schema.Auth)

	httpRequest, err := http.NewRequestWithContext(c, http.MethodPost, p.credentials.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return tokenRS{}, err
	}

	httpRequest.Header.Set("Authorization", "Basic "+p.credentials.Base64Token)
	httpRequest.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpRequest.Header.Set("Accept", "application/json")
	httpRequest.Header.Set("User-Agent", p.userAgent)

	response, err := p.httpClient.Do(httpRequest)
	if err != nil {
		return tokenRS{}, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return tokenRS{}, fmt.Errorf("invalid status code: %d", response.StatusCode)
	}

	bodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return tokenRS{}, err
	}

	var rs tokenRS
	err = json.Unmarshal(bodyBytes, &rs)
	if err != nil {
		return tokenRS{}, err
	}

	if rs.AccessToken == "" {
		return tokenRS{}, fmt.Errorf("missing access token")
	}

	return rs, nil
}

// tokenTTL prefers the exp claim of a JWT access token over expires_in.
func (p *Provider) tokenTTL(rs tokenRS) time.Duration {
	ttl := time.Duration(rs.ExpiresIn) * time.Second

	claims := &parsedClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(rs.AccessToken, claims)
	if err == nil && claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Time.Sub(p.now())
	}

	return ttl - expirySkew
}

func (p *Provider) cacheKey() string {
	return fmt.Sprintf("%s:%s", p.credentials.TokenURL, p.credentials.Audience)
}
