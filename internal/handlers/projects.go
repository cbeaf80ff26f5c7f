// projects.go
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
	"net/url"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/config"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/localnerve/projectsdb/internal/utils"
	"gorm.io/gorm"
)

// ProjectHandler handles project routes
type ProjectHandler struct {
	DB     *gorm.DB
	Config *config.Config
}

// CreateProjectRequest is the body of POST /api/projects
type CreateProjectRequest struct {
	ProjectName     string           `json:"projectname"`
	Description     string           `json:"description"`
	ProjectType     string           `json:"projecttype"`
	CreatedByUserID types.FlexUint64 `json:"createdbyuserid"`
	UseAllTemplates *bool            `json:"useAllTemplates"`
}

// ProjectResponse wraps a single project
type ProjectResponse struct {
	Project *models.Project `json:"project"`
}

// ProjectsResponse wraps a project list
type ProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}

// ListProjects handles GET /api/projects
// @Summary List projects
// @Description List projects newest first, optionally filtered by project type
// @Tags Projects
// @Produce json
// @Param category query string false "Project type filter"
// @Success 200 {object} ProjectsResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *fiber.Ctx) error {
	return h.listProjects(c, c.Query("category"))
}

// ListProjectsByCategory handles GET /api/projects/cat/:category
// @Summary List projects by category
// @Tags Projects
// @Produce json
// @Param category path string true "Project type"
// @Success 200 {object} ProjectsResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/cat/{category} [get]
func (h *ProjectHandler) ListProjectsByCategory(c *fiber.Ctx) error {
	category, err := url.PathUnescape(c.Params("category"))
	if err != nil {
		return utils.FailureResponse(c, types.ValidationError("Invalid category: "+c.Params("category")))
	}
	return h.listProjects(c, category)
}

func (h *ProjectHandler) listProjects(c *fiber.Ctx, category string) error {
	projects, err := services.ListProjects(requestDB(h.DB, c), category)
	if err != nil {
		return utils.FailureResponse(c, err)
	}
	return utils.SuccessResponse(c, ProjectsResponse{Projects: projects}, fiber.StatusOK)
}

// CreateProject handles POST /api/projects
// @Summary Create a project
// @Description Create a project and provision its phases and tasks from every template
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body CreateProjectRequest true "New project"
// @Success 201 {object} ProjectResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *fiber.Ctx) error {
	var body CreateProjectRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.FailureResponse(c, bodyError(err))
	}

	input := services.ProjectInput{
		Name:            body.ProjectName,
		Description:     body.Description,
		Type:            body.ProjectType,
		CreatorUserID:   h.creatorID(c, body.CreatedByUserID.Uint64()),
		UseAllTemplates: body.UseAllTemplates == nil || *body.UseAllTemplates,
	}

	project, err := services.CreateProjectWithTemplates(requestDB(h.DB, c), input)
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.SuccessResponse(c, ProjectResponse{Project: project}, fiber.StatusCreated)
}

// creatorID picks the project creator: the session user, then the id in the body, then the
// configured fallback
func (h *ProjectHandler) creatorID(c *fiber.Ctx, requested uint64) uint64 {
	if id := currentUserID(c); id != 0 {
		return id
	}
	if requested != 0 {
		return requested
	}
	if h.Config != nil {
		return h.Config.DefaultCreatorUserID
	}
	return 0
}

// GetProject handles GET /api/projects/:projectid
// @Summary Get a project
// @Description Get a project with its phases, tasks, assignments and linked templates
// @Tags Projects
// @Produce json
// @Param projectid path int true "Project ID"
// @Success 200 {object} ProjectResponse
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid} [get]
func (h *ProjectHandler) GetProject(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	project, err := services.GetProjectDetail(requestDB(h.DB, c), projectID)
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.SuccessResponse(c, ProjectResponse{Project: project}, fiber.StatusOK)
}

// GetProjectProgress handles GET /api/projects/:projectid/progress
// @Summary Get project progress
// @Tags Projects
// @Produce json
// @Param projectid path int true "Project ID"
// @Success 200 {object} services.ProjectProgress
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/progress [get]
func (h *ProjectHandler) GetProjectProgress(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	progress, err := services.GetProjectProgress(requestDB(h.DB, c), projectID)
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.SuccessResponse(c, progress, fiber.StatusOK)
}
