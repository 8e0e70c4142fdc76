package calendar

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"meet-scheduler/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

const calendarScope = "https://www.googleapis.com/auth/calendar"

type serviceAccount struct {
	ClientEmail string `json:"client_email"`
	PrivateKey  string `json:"private_key"`

	key *rsa.PrivateKey
}

// parseServiceAccount validates the credential eagerly so a broken secret
// fails at startup instead of per request.
func parseServiceAccount(raw string) (*serviceAccount, error) {
	var sa serviceAccount
	if err := json.Unmarshal([]byte(raw), &sa); err != nil {
		return nil, errs.Wrap(err, "failed to parse service account JSON")
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, errs.New("service account JSON missing client_email or private_key")
	}
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey))
	if err != nil {
		return nil, errs.Wrap(err, "failed to parse service account private key")
	}
	sa.key = key
	return &sa, nil
}

// accessToken exchanges a signed RS256 assertion for a short-lived OAuth
// bearer token.
func (g *GoogleCalendar) accessToken(ctx context.Context) (string, error) {
	if g.account == nil {
		return "", errs.New("service account not configured")
	}

	now := time.Now()
	assertion := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims{
		"iss":   g.account.ClientEmail,
		"scope": calendarScope,
		"aud":   g.tokenEndpoint,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	})
	signed, err := assertion.SignedString(g.account.key)
	if err != nil {
		return "", errs.Wrap(err, "failed to sign service account assertion")
	}

	form := url.Values{
		"grant_type": {"urn:ietf:params:oauth:grant-type:jwt-bearer"},
		"assertion":  {signed},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.tokenEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", errs.Wrap(err, "failed to build token request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(req)
	if err != nil {
		return "", errs.Wrap(err, "token exchange failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", errs.New("token exchange returned " + resp.Status + ": " + string(body))
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", errs.Wrap(err, "failed to decode token response")
	}
	if payload.AccessToken == "" {
		return "", errs.New("token response missing access_token")
	}
	return payload.AccessToken, nil
}
