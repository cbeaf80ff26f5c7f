// templates.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/data"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/utils"
	"gorm.io/gorm"
)

// TemplateHandler handles template catalog routes
type TemplateHandler struct {
	DB *gorm.DB
}

// TemplatesResponse wraps the template list
type TemplatesResponse struct {
	Templates []models.Template `json:"templates"`
}

// ListTemplates handles GET /api/templates
// @Summary List templates
// @Description List every template with its ordered phases and tasks
// @Tags Templates
// @Produce json
// @Success 200 {object} TemplatesResponse
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /templates [get]
func (h *TemplateHandler) ListTemplates(c *fiber.Ctx) error {
	templates, err := services.ListTemplates(requestDB(h.DB, c))
	if err != nil {
		return utils.FailureResponse(c, err)
	}
	return utils.SuccessResponse(c, TemplatesResponse{Templates: templates}, fiber.StatusOK)
}

// SeedTemplates handles POST /api/templates/seed
// @Summary Seed the template catalog
// @Description Load the built-in template catalog; existing templates are kept
// @Tags Templates
// @Produce json
// @Success 200 {object} services.SeedResult
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /templates/seed [post]
func (h *TemplateHandler) SeedTemplates(c *fiber.Ctx) error {
	catalog, err := data.DefaultCatalog()
	if err != nil {
		return utils.ErrorResponse(c, err.Error(), fiber.StatusInternalServerError, "catalog")
	}

	result, err := services.SeedTemplates(requestDB(h.DB, c), catalog)
	if err != nil {
		return utils.FailureResponse(c, err)
	}
	return utils.SuccessResponse(c, result, fiber.StatusOK)
}
