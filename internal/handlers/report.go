// report.go
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
	"bytes"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/localnerve/projectsdb/internal/utils"
	"gorm.io/gorm"
)

// ReportHandler handles the PDF export routes
type ReportHandler struct {
	DB *gorm.DB
}

// GeneratePDF handles POST /api/generate-pdf
// @Summary Render a project report
// @Description Render a project-with-phases-and-tasks document as a PDF attachment
// @Tags Reports
// @Accept json
// @Produce application/pdf
// @Param project body services.ReportProject true "Project document"
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /generate-pdf [post]
func (h *ReportHandler) GeneratePDF(c *fiber.Ctx) error {
	if len(c.Body()) == 0 {
		return utils.FailureResponse(c, types.ValidationError("No project data provided"))
	}

	var project services.ReportProject
	if err := c.BodyParser(&project); err != nil {
		return utils.FailureResponse(c, bodyError(err))
	}

	return sendReport(c, &project)
}

// GetProjectReport handles GET /api/projects/:projectid/report
// @Summary Render a stored project as a PDF
// @Tags Reports
// @Produce application/pdf
// @Param projectid path int true "Project ID"
// @Success 200 {file} file
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/report [get]
func (h *ReportHandler) GetProjectReport(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	project, err := services.GetProjectDetail(requestDB(h.DB, c), projectID)
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return sendReport(c, services.ReportFromProject(project))
}

func sendReport(c *fiber.Ctx, project *services.ReportProject) error {
	var buf bytes.Buffer
	if err := services.RenderProjectReport(&buf, project); err != nil {
		return utils.FailureResponse(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+services.ReportFileName(project)+`"`)
	c.Set(fiber.HeaderContentLength, strconv.Itoa(buf.Len()))
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
