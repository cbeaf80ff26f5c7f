// auth.go
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

package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/localnerve/projectsdb/internal/middleware"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/utils"
)

// AuthHandler handles the delegated sign-up, sign-in and session routes
type AuthHandler struct {
	Auth middleware.AuthConfig
}

// SignUpRequest is the body of POST /api/auth/signup
type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
}

// SignInRequest is the body of POST /api/auth/signin
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse reports the signed-in local user
type AuthResponse struct {
	Success     bool         `json:"success"`
	Message     string       `json:"message,omitempty"`
	Client      *models.User `json:"client"`
	AccessToken string       `json:"access_token,omitempty"`
}

func (h *AuthHandler) enabled(c *fiber.Ctx) error {
	if h.Auth.Disabled || h.Auth.Auth == nil {
		return utils.ErrorResponse(c, "Authentication is disabled", fiber.StatusNotImplemented, "auth_disabled")
	}
	return nil
}

// SignUp handles POST /api/auth/signup
// @Summary Sign up
// @Description Register an account with the auth server and create the local user
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body SignUpRequest true "New account"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/signup [post]
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	if err := h.enabled(c); err != nil {
		return err
	}

	var body SignUpRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.FailureResponse(c, bodyError(err))
	}

	identity, err := h.Auth.Auth.SignUp(services.SignUpInput(body))
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	user, err := services.EnsureUser(requestDB(h.Auth.DB, c), *identity)
	if err != nil {
		logutils.Log.WithError(err).WithField("email", body.Email).Error("Account created but local user setup failed")
		return utils.SuccessResponse(c, AuthResponse{
			Success: true,
			Message: "Account created but there was an issue with profile setup. Please contact support.",
		}, fiber.StatusCreated)
	}

	return utils.SuccessResponse(c, AuthResponse{
		Success: true,
		Message: "Account created successfully! Please check your email to confirm your account.",
		Client:  user,
	}, fiber.StatusCreated)
}

// SignIn handles POST /api/auth/signin
// @Summary Sign in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body SignInRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /auth/signin [post]
func (h *AuthHandler) SignIn(c *fiber.Ctx) error {
	if err := h.enabled(c); err != nil {
		return err
	}

	var body SignInRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.FailureResponse(c, bodyError(err))
	}

	session, err := h.Auth.Auth.SignIn(body.Email, body.Password)
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	user, err := services.EnsureUser(requestDB(h.Auth.DB, c), session.Identity)
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.SuccessResponse(c, AuthResponse{
		Success:     true,
		Message:     "Signed in successfully!",
		Client:      user,
		AccessToken: session.AccessToken,
	}, fiber.StatusOK)
}

// SignOut handles POST /api/auth/signout
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Failure 401 {object} utils.ErrorResponseStruct
// @Router /auth/signout [post]
func (h *AuthHandler) SignOut(c *fiber.Ctx) error {
	if err := h.enabled(c); err != nil {
		return err
	}

	if err := h.Auth.Auth.SignOut(middleware.SessionToken(c)); err != nil {
		return utils.FailureResponse(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     services.SessionCookie,
		Value:    "",
		Expires:  time.Unix(0, 0),
		HTTPOnly: true,
	})

	return utils.SuccessResponse(c, AuthResponse{Success: true}, fiber.StatusOK)
}

// Session handles GET /api/auth/session
// @Summary Current session
// @Description Resolve the presented credential to its local user; client is null without a valid session
// @Tags Auth
// @Produce json
// @Success 200 {object} AuthResponse
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	if h.Auth.Disabled || middleware.SessionToken(c) == "" {
		return utils.SuccessResponse(c, AuthResponse{}, fiber.StatusOK)
	}

	user, err := middleware.ResolveUser(c, h.Auth)
	if err != nil {
		logutils.Log.WithError(err).Debug("Session lookup failed")
		return utils.SuccessResponse(c, AuthResponse{}, fiber.StatusOK)
	}

	return utils.SuccessResponse(c, AuthResponse{Success: true, Client: user}, fiber.StatusOK)
}
