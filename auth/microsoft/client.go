// Package microsoft exchanges an OAuth authorization code from the campus
// Microsoft tenant for the signed-in student's identity.
package microsoft

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

const graphMeURL = "https://graph.microsoft.com/v1.0/me"

type Config struct {
	ClientID     string `toml:"client_id"`
	ClientSecret string `toml:"client_secret"`
	Tenant       string `toml:"tenant"`
	RedirectURL  string `toml:"redirect_url"`

	// endpoint overrides for tests; empty means the real tenant
	AuthURL  string `toml:"-"`
	TokenURL string `toml:"-"`
	GraphURL string `toml:"-"`
}

// Identity is what the bridge knows about a signed-in account.
type Identity struct {
	Email string
	Name  string
}

// AuthError wraps any upstream failure so callers can tell an identity
// problem from an internal one. The exchange fails closed: no identity is
// ever returned alongside an error.
type AuthError struct {
	Stage string
	Err   error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("microsoft auth: %s: %v", e.Stage, e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

type Client struct {
	oauth    *oauth2.Config
	graphURL string
	client   *http.Client
}

func New(cfg Config) *Client {
	authURL := cfg.AuthURL
	if authURL == "" {
		authURL = fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/authorize", cfg.Tenant)
	}
	tokenURL := cfg.TokenURL
	if tokenURL == "" {
		tokenURL = fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", cfg.Tenant)
	}
	graphURL := cfg.GraphURL
	if graphURL == "" {
		graphURL = graphMeURL
	}
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile", "User.Read"},
			Endpoint: oauth2.Endpoint{
				AuthURL:  authURL,
				TokenURL: tokenURL,
			},
		},
		graphURL: graphURL,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

// AuthCodeURL is where the frontend sends the student to sign in.
func (c *Client) AuthCodeURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// Exchange trades the authorization code for a token and resolves the
// account's profile through Graph.
func (c *Client) Exchange(ctx context.Context, code string) (Identity, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.client)
	token, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return Identity{}, &AuthError{Stage: "code exchange", Err: err}
	}
	identity, err := c.fetchProfile(ctx, token)
	if err != nil {
		return Identity{}, &AuthError{Stage: "profile fetch", Err: err}
	}
	return identity, nil
}

func (c *Client) fetchProfile(ctx context.Context, token *oauth2.Token) (Identity, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.graphURL, nil)
	if err != nil {
		return Identity{}, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Identity{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var profile struct {
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
		DisplayName       string `json:"displayName"`
	}
	err = json.NewDecoder(resp.Body).Decode(&profile)
	if err != nil {
		return Identity{}, err
	}

	email := profile.Mail
	if email == "" {
		email = profile.UserPrincipalName
	}
	if email == "" {
		return Identity{}, fmt.Errorf("profile has no email")
	}
	return Identity{
		Email: strings.ToLower(email),
		Name:  profile.DisplayName,
	}, nil
}
