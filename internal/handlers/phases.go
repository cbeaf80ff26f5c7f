// phases.go
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
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/localnerve/projectsdb/internal/utils"
	"gorm.io/gorm"
)

// PhaseHandler handles project phase routes
type PhaseHandler struct {
	DB *gorm.DB
}

// PhaseRequest is the body of the phase create and update routes
type PhaseRequest struct {
	PhaseName   string           `json:"phasename"`
	PhaseOrder  types.FlexUint64 `json:"phaseorder"`
	Status      string           `json:"status"`
	CompletedBy types.FlexUint64 `json:"completedby"`
}

func (r PhaseRequest) input(c *fiber.Ctx) services.PhaseInput {
	completedBy := r.CompletedBy.Uint64()
	if completedBy == 0 && r.Status == models.StatusCompleted {
		completedBy = currentUserID(c)
	}
	return services.PhaseInput{
		PhaseName:   r.PhaseName,
		PhaseOrder:  int(r.PhaseOrder.Uint64()),
		Status:      r.Status,
		CompletedBy: completedBy,
	}
}

// CreatePhase handles POST /api/projects/:projectid/phases
// @Summary Add a phase
// @Description Add a phase to a project; the order defaults to after the last phase
// @Tags Phases
// @Accept json
// @Produce json
// @Param projectid path int true "Project ID"
// @Param phase body PhaseRequest true "New phase"
// @Success 201 {object} models.Phase
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/phases [post]
func (h *PhaseHandler) CreatePhase(c *fiber.Ctx) error {
	projectID, err := paramID(c, "projectid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	var body PhaseRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.FailureResponse(c, bodyError(err))
	}

	phase, err := services.CreatePhase(requestDB(h.DB, c), projectID, body.input(c))
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.SuccessResponse(c, phase, fiber.StatusCreated)
}

// UpdatePhase handles PUT /api/projects/:projectid/phases/:phaseid
// @Summary Update a phase
// @Tags Phases
// @Accept json
// @Produce json
// @Param projectid path int true "Project ID"
// @Param phaseid path int true "Phase ID"
// @Param phase body PhaseRequest true "Phase changes"
// @Success 200 {object} models.Phase
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/phases/{phaseid} [put]
func (h *PhaseHandler) UpdatePhase(c *fiber.Ctx) error {
	ids, err := paramIDs(c, "projectid", "phaseid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	var body PhaseRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.FailureResponse(c, bodyError(err))
	}

	phase, err := services.UpdatePhase(requestDB(h.DB, c), ids[0], ids[1], body.input(c))
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.SuccessResponse(c, phase, fiber.StatusOK)
}

// DeletePhase handles DELETE /api/projects/:projectid/phases/:phaseid
// @Summary Delete a phase
// @Description Delete a phase with its tasks and their assignments
// @Tags Phases
// @Produce json
// @Param projectid path int true "Project ID"
// @Param phaseid path int true "Phase ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/phases/{phaseid} [delete]
func (h *PhaseHandler) DeletePhase(c *fiber.Ctx) error {
	ids, err := paramIDs(c, "projectid", "phaseid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	if err := services.DeletePhase(requestDB(h.DB, c), ids[0], ids[1]); err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.MessageResponse(c, "Phase deleted successfully")
}
