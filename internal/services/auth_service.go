package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/authorizerdev/authorizer-go"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/localnerve/projectsdb/internal/config"
	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/localnerve/projectsdb/internal/utils"
)

// SessionCookie is the Authorizer session cookie name
const SessionCookie = "cookie_session"

// SignUpInput is a new account request
type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Company  string
	Phone    string
}

// AuthSession is the result of a successful sign-in
type AuthSession struct {
	AccessToken string
	Identity    Identity
}

// Authenticator delegates identity operations to the auth server
type Authenticator interface {
	SignUp(input SignUpInput) (*Identity, error)
	SignIn(email, password string) (*AuthSession, error)
	SignOut(token string) error
	ValidateSession(cookie string) (*Identity, error)
}

// AuthorizerAuth is the Authenticator backed by an Authorizer server
type AuthorizerAuth struct {
	client *authorizer.AuthorizerClient
}

var (
	authClient *AuthorizerAuth
	authMu     sync.Mutex
)

// InitAuthorizer creates the shared Authorizer client after checking the server is reachable.
// A failed attempt is retried on the next call.
func InitAuthorizer(cfg *config.Config) (*AuthorizerAuth, error) {
	authMu.Lock()
	defer authMu.Unlock()

	if authClient != nil {
		return authClient, nil
	}

	if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
		return nil, fmt.Errorf("authorizer ping failed: %w", err)
	}

	logutils.Log.WithFields(logutils.Fields{
		"authorizerURL": cfg.AuthzURL,
		"clientID":      cfg.AuthzClientID,
		"redirectURL":   cfg.AuthzRedirectURL,
	}).Info("Initializing Authorizer")

	client, err := authorizer.NewAuthorizerClient(cfg.AuthzClientID, cfg.AuthzURL, cfg.AuthzRedirectURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create authorizer client: %w", err)
	}

	authClient = &AuthorizerAuth{client: client}
	return authClient, nil
}

// LazyAuthorizer is an Authenticator that connects to the Authorizer on first use
type LazyAuthorizer struct {
	Config *config.Config
}

func (l *LazyAuthorizer) auth() (*AuthorizerAuth, error) {
	a, err := InitAuthorizer(l.Config)
	if err != nil {
		logutils.Log.WithError(err).Error("Authorizer unavailable")
		return nil, types.ExternalServiceError("Authorizer is unavailable", err)
	}
	return a, nil
}

// SignUp implements Authenticator
func (l *LazyAuthorizer) SignUp(input SignUpInput) (*Identity, error) {
	a, err := l.auth()
	if err != nil {
		return nil, err
	}
	return a.SignUp(input)
}

// SignIn implements Authenticator
func (l *LazyAuthorizer) SignIn(email, password string) (*AuthSession, error) {
	a, err := l.auth()
	if err != nil {
		return nil, err
	}
	return a.SignIn(email, password)
}

// SignOut implements Authenticator
func (l *LazyAuthorizer) SignOut(token string) error {
	a, err := l.auth()
	if err != nil {
		return err
	}
	return a.SignOut(token)
}

// ValidateSession implements Authenticator
func (l *LazyAuthorizer) ValidateSession(cookie string) (*Identity, error) {
	a, err := l.auth()
	if err != nil {
		return nil, err
	}
	return a.ValidateSession(cookie)
}

// SignUp registers an account with the auth server
func (a *AuthorizerAuth) SignUp(input SignUpInput) (*Identity, error) {
	if err := validateSignUp(input); err != nil {
		return nil, err
	}

	email := input.Email
	name := input.Name
	req := &authorizer.SignUpInput{
		Email:           &email,
		Password:        input.Password,
		ConfirmPassword: input.Password,
		GivenName:       &name,
	}
	if input.Phone != "" {
		phone := input.Phone
		req.PhoneNumber = &phone
	}

	res, err := a.client.SignUp(req)
	if err != nil {
		return nil, classifyAuthError(err, true)
	}

	identity := Identity{
		Email:   input.Email,
		Name:    input.Name,
		Company: input.Company,
		Phone:   input.Phone,
	}
	if res != nil && res.User != nil {
		fromAuthorizerUser(res.User, &identity)
	}
	identity.Metadata = mergeMetadata(identity.Metadata, map[string]interface{}{
		"full_name": input.Name,
		"company":   input.Company,
	})

	return &identity, nil
}

// SignIn exchanges credentials for an access token
func (a *AuthorizerAuth) SignIn(email, password string) (*AuthSession, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, types.ValidationError("Email and password are required")
	}

	res, err := a.client.Login(&authorizer.LoginInput{
		Email:    &email,
		Password: password,
	})
	if err != nil {
		return nil, classifyAuthError(err, false)
	}
	if res == nil || res.User == nil {
		return nil, types.AuthError("auth_failed", "Authentication failed", nil)
	}

	session := &AuthSession{Identity: Identity{Email: email}}
	if res.AccessToken != nil {
		session.AccessToken = *res.AccessToken
	}
	fromAuthorizerUser(res.User, &session.Identity)

	return session, nil
}

// SignOut ends the session identified by an access token or session cookie
func (a *AuthorizerAuth) SignOut(token string) error {
	if token == "" {
		return nil
	}

	headers := map[string]string{"Authorization": "Bearer " + token}
	if !looksLikeJWT(token) {
		headers = map[string]string{"Cookie": SessionCookie + "=" + token}
	}

	if _, err := a.client.Logout(headers); err != nil {
		return types.AuthError("signout_failed", err.Error(), err)
	}
	return nil
}

// ValidateSession resolves a session cookie to the signed-in identity
func (a *AuthorizerAuth) ValidateSession(cookie string) (*Identity, error) {
	if cookie == "" {
		return nil, types.AuthError("no_session", "Authorizer cookie \""+SessionCookie+"\" not found", nil)
	}

	res, err := a.client.ValidateSession(&authorizer.ValidateSessionInput{
		Cookie: cookie,
	})
	if err != nil {
		return nil, types.AuthError("invalid_session", "Session validation failed", err)
	}
	if res == nil || !res.IsValid || res.User == nil {
		return nil, types.AuthError("invalid_session", "Session is not valid", nil)
	}

	var identity Identity
	fromAuthorizerUser(res.User, &identity)
	return &identity, nil
}

// TokenVerifier checks Authorizer access tokens locally with the shared HS256 secret
type TokenVerifier struct {
	secret []byte
}

// NewTokenVerifier returns a verifier, or nil when no secret is configured
func NewTokenVerifier(secret string) *TokenVerifier {
	if secret == "" {
		return nil
	}
	return &TokenVerifier{secret: []byte(secret)}
}

type accessClaims struct {
	Email string `json:"email"`
	Name  string `json:"given_name"`
	jwt.RegisteredClaims
}

// Verify validates the token signature and expiry and returns its identity
func (v *TokenVerifier) Verify(token string) (*Identity, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return nil, types.AuthError("invalid_token", "Invalid access token", err)
	}
	if claims.Subject == "" {
		return nil, types.AuthError("invalid_token", "Access token has no subject", nil)
	}

	return &Identity{
		AuthID: claims.Subject,
		Email:  claims.Email,
		Name:   claims.Name,
	}, nil
}

// authorizerUser is the subset of the Authorizer user document kept locally
type authorizerUser struct {
	ID          string                 `json:"id"`
	Email       string                 `json:"email"`
	GivenName   *string                `json:"given_name"`
	FamilyName  *string                `json:"family_name"`
	Nickname    *string                `json:"nickname"`
	PhoneNumber *string                `json:"phone_number"`
	AppData     map[string]interface{} `json:"app_data"`
}

// fromAuthorizerUser copies the auth server's user document into identity, keeping the
// full document as profile metadata
func fromAuthorizerUser(user interface{}, identity *Identity) {
	raw, err := json.Marshal(user)
	if err != nil {
		return
	}

	var doc authorizerUser
	if err := json.Unmarshal(raw, &doc); err != nil {
		return
	}
	var metadata map[string]interface{}
	_ = json.Unmarshal(raw, &metadata)

	if doc.ID != "" {
		if _, err := uuid.Parse(doc.ID); err != nil {
			logutils.Log.WithField("authid", doc.ID).Warn("Authorizer user id is not a UUID")
		}
		identity.AuthID = doc.ID
	}
	if doc.Email != "" {
		identity.Email = doc.Email
	}

	name := strings.TrimSpace(strings.Join([]string{deref(doc.GivenName), deref(doc.FamilyName)}, " "))
	if name == "" {
		name = deref(doc.Nickname)
	}
	if name != "" && identity.Name == "" {
		identity.Name = name
	}
	if phone := deref(doc.PhoneNumber); phone != "" && identity.Phone == "" {
		identity.Phone = phone
	}
	if company, ok := doc.AppData["company"].(string); ok && identity.Company == "" {
		identity.Company = company
	}

	identity.Metadata = mergeMetadata(identity.Metadata, metadata)
}

func validateSignUp(input SignUpInput) error {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" ||
		strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Company) == "" {
		return types.ValidationError("Missing required fields")
	}
	if len(input.Password) < 6 {
		return types.ValidationError("Password must be at least 6 characters")
	}
	return nil
}

// classifyAuthError maps auth server messages onto the stable client codes
func classifyAuthError(err error, signUp bool) error {
	message := err.Error()
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "already"):
		return types.AuthError("email_exists", "An account with this email already exists", err)
	case signUp && strings.Contains(lower, "password"):
		return types.AuthError("weak_password", "Password does not meet the requirements", err)
	case strings.Contains(lower, "not verified"), strings.Contains(lower, "not confirmed"):
		return types.AuthError("email_not_confirmed", "Email address is not confirmed", err)
	case strings.Contains(lower, "credentials"), strings.Contains(lower, "invalid password"),
		strings.Contains(lower, "user not found"), strings.Contains(lower, "bad user"):
		return types.AuthError("invalid_credentials", "Invalid email or password", err)
	}

	return types.AuthError("auth_failed", message, err)
}

func looksLikeJWT(token string) bool {
	return strings.Count(token, ".") == 2
}

func mergeMetadata(dst, src map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = make(map[string]interface{}, len(src))
	}
	for k, v := range src {
		if v == nil || v == "" {
			continue
		}
		dst[k] = v
	}
	return dst
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
