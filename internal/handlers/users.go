package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/middleware"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/utils"
	"gorm.io/gorm"
)

// UserHandler handles user routes
type UserHandler struct {
	DB *gorm.DB
}

// UsersResponse wraps the user list
type UsersResponse struct {
	Users []models.User `json:"users"`
}

// UserResponse wraps a single user
type UserResponse struct {
	User *models.User `json:"user"`
}

// ProfileRequest is the body of the profile update route. Absent fields are unchanged.
type ProfileRequest struct {
	Name    *string `json:"name"`
	Company *string `json:"company"`
	Phone   *string `json:"phone"`
}

// AssignedTasksResponse wraps a user's task assignments
type AssignedTasksResponse struct {
	AssignedTasks []models.TaskAssignment `json:"assignedTasks"`
}

// ListUsers handles GET /api/users
// @Summary List users
// @Tags Users
// @Produce json
// @Success 200 {object} UsersResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /users [get]
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	users, err := services.ListUsers(requestDB(h.DB, c))
	if err != nil {
		return utils.FailureResponse(c, err)
	}
	return utils.SuccessResponse(c, UsersResponse{Users: users}, fiber.StatusOK)
}

// GetUser handles GET /api/users/:userid
// @Summary Get a user profile
// @Tags Users
// @Produce json
// @Param userid path int true "User ID"
// @Success 200 {object} UserResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{userid} [get]
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	userID, err := paramID(c, "userid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	user, err := services.GetUser(requestDB(h.DB, c), userID)
	if err != nil {
		return utils.FailureResponse(c, err)
	}
	return utils.SuccessResponse(c, UserResponse{User: user}, fiber.StatusOK)
}

// UpdateProfile handles PUT /api/users/:userid
// @Summary Update a user profile
// @Description Update name, company and phone. Members may only edit their own profile.
// @Tags Users
// @Accept json
// @Produce json
// @Param userid path int true "User ID"
// @Param profile body ProfileRequest true "Profile changes"
// @Success 200 {object} UserResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{userid} [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, err := paramID(c, "userid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	if current := middleware.CurrentUser(c); current != nil &&
		current.UserID != userID && current.Role != models.RoleAdmin {
		return utils.ErrorResponse(c, "Cannot edit another user's profile", fiber.StatusForbidden, "forbidden")
	}

	var body ProfileRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.FailureResponse(c, bodyError(err))
	}

	user, err := services.UpdateProfile(requestDB(h.DB, c), userID, services.ProfileInput{
		Name:    body.Name,
		Company: body.Company,
		Phone:   body.Phone,
	})
	if err != nil {
		return utils.FailureResponse(c, err)
	}
	return utils.SuccessResponse(c, UserResponse{User: user}, fiber.StatusOK)
}

// ListUserTasks handles GET /api/users/:userid/tasks
// @Summary List a user's assigned tasks
// @Description Each assignment carries its task, the task's phase and the phase's project
// @Tags Users
// @Produce json
// @Param userid path int true "User ID"
// @Success 200 {object} AssignedTasksResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /users/{userid}/tasks [get]
func (h *UserHandler) ListUserTasks(c *fiber.Ctx) error {
	userID, err := paramID(c, "userid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	assignments, err := services.ListAssignedTasks(requestDB(h.DB, c), userID)
	if err != nil {
		return utils.FailureResponse(c, err)
	}
	return utils.SuccessResponse(c, AssignedTasksResponse{AssignedTasks: assignments}, fiber.StatusOK)
}
