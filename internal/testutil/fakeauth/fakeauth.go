// fakeauth.go
//
// Agency project tracker that provisions project phases and tasks from service templates
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of projectsdb.
// projectsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// projectsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with projectsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

// Package fakeauth is an in-memory services.Authenticator for handler and middleware tests.
package fakeauth

import (
	"sync"

	"github.com/google/uuid"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/types"
)

type account struct {
	password string
	identity services.Identity
}

// Authenticator keeps accounts and sessions in memory. Sessions are opaque cookie values.
type Authenticator struct {
	mu       sync.Mutex
	accounts map[string]*account
	sessions map[string]string
	// SignUpErr, when set, is returned by SignUp
	SignUpErr error
}

// New returns an empty Authenticator
func New() *Authenticator {
	return &Authenticator{
		accounts: make(map[string]*account),
		sessions: make(map[string]string),
	}
}

// AddAccount registers an account and returns a live session for it
func (a *Authenticator) AddAccount(email, password, name string) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.accounts[email] = &account{
		password: password,
		identity: services.Identity{AuthID: uuid.NewString(), Email: email, Name: name},
	}
	session := uuid.NewString()
	a.sessions[session] = email
	return session
}

// SignUp implements services.Authenticator
func (a *Authenticator) SignUp(input services.SignUpInput) (*services.Identity, error) {
	if a.SignUpErr != nil {
		return nil, a.SignUpErr
	}
	if input.Email == "" || input.Password == "" || input.Name == "" || input.Company == "" {
		return nil, types.ValidationError("Missing required fields")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.accounts[input.Email]; exists {
		return nil, types.AuthError("email_exists", "An account with this email already exists", nil)
	}
	identity := services.Identity{
		AuthID:  uuid.NewString(),
		Email:   input.Email,
		Name:    input.Name,
		Company: input.Company,
		Phone:   input.Phone,
	}
	a.accounts[input.Email] = &account{password: input.Password, identity: identity}
	return &identity, nil
}

// SignIn implements services.Authenticator, using a fresh session id as the access token
func (a *Authenticator) SignIn(email, password string) (*services.AuthSession, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	acct, ok := a.accounts[email]
	if !ok || acct.password != password {
		return nil, types.AuthError("invalid_credentials", "Invalid email or password", nil)
	}
	session := uuid.NewString()
	a.sessions[session] = email
	return &services.AuthSession{AccessToken: session, Identity: acct.identity}, nil
}

// SignOut implements services.Authenticator
func (a *Authenticator) SignOut(token string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	delete(a.sessions, token)
	return nil
}

// ValidateSession implements services.Authenticator
func (a *Authenticator) ValidateSession(cookie string) (*services.Identity, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	email, ok := a.sessions[cookie]
	if !ok {
		return nil, types.AuthError("invalid_session", "Session is not valid", nil)
	}
	identity := a.accounts[email].identity
	return &identity, nil
}
