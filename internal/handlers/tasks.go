// tasks.go
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
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// TaskHandler handles task and assignment routes
type TaskHandler struct {
	DB *gorm.DB
}

// TaskRequest is the body of the task create and update routes
type TaskRequest struct {
	TaskDescription string           `json:"taskdescription"`
	Status          string           `json:"status"`
	DueDate         string           `json:"duedate"`
	CompletedBy     types.FlexUint64 `json:"completedby"`
	// Assignees is honored on create only
	Assignees types.FlexList[types.FlexUint64] `json:"assignees"`
}

// AssignRequest is the body of the assign routes
type AssignRequest struct {
	UserID types.FlexUint64 `json:"userid"`
}

// TaskResponse wraps a single task
type TaskResponse struct {
	Task *models.Task `json:"task"`
}

func (r TaskRequest) input(c *fiber.Ctx) (services.TaskInput, error) {
	due, err := parseDate(r.DueDate)
	if err != nil {
		return services.TaskInput{}, err
	}
	completedBy := r.CompletedBy.Uint64()
	if completedBy == 0 && r.Status == models.StatusCompleted {
		completedBy = currentUserID(c)
	}
	return services.TaskInput{
		TaskDescription: r.TaskDescription,
		Status:          r.Status,
		DueDate:         due,
		CompletedBy:     completedBy,
		Assignees: lo.Map(r.Assignees, func(id types.FlexUint64, _ int) uint64 {
			return id.Uint64()
		}),
	}, nil
}

// CreateTask handles POST /api/projects/:projectid/phases/:phaseid/tasks
// @Summary Add a task
// @Description Add a task, optionally assigning users to it in the same transaction
// @Tags Tasks
// @Accept json
// @Produce json
// @Param projectid path int true "Project ID"
// @Param phaseid path int true "Phase ID"
// @Param task body TaskRequest true "New task"
// @Success 201 {object} models.Task
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/phases/{phaseid}/tasks [post]
func (h *TaskHandler) CreateTask(c *fiber.Ctx) error {
	ids, err := paramIDs(c, "projectid", "phaseid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	var body TaskRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.FailureResponse(c, bodyError(err))
	}
	input, err := body.input(c)
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	task, err := services.CreateTask(requestDB(h.DB, c), ids[0], ids[1], input)
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.SuccessResponse(c, task, fiber.StatusCreated)
}

// GetTask handles GET /api/projects/:projectid/phases/:phaseid/tasks/:taskid
// @Summary Get a task
// @Tags Tasks
// @Produce json
// @Param projectid path int true "Project ID"
// @Param phaseid path int true "Phase ID"
// @Param taskid path int true "Task ID"
// @Success 200 {object} TaskResponse
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/phases/{phaseid}/tasks/{taskid} [get]
func (h *TaskHandler) GetTask(c *fiber.Ctx) error {
	ids, err := paramIDs(c, "projectid", "phaseid", "taskid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	task, err := services.GetTask(requestDB(h.DB, c), ids[0], ids[1], ids[2])
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.SuccessResponse(c, TaskResponse{Task: task}, fiber.StatusOK)
}

// UpdateTask handles PUT /api/projects/:projectid/phases/:phaseid/tasks/:taskid
// @Summary Update a task
// @Description Update a task; an absent due date clears it
// @Tags Tasks
// @Accept json
// @Produce json
// @Param projectid path int true "Project ID"
// @Param phaseid path int true "Phase ID"
// @Param taskid path int true "Task ID"
// @Param task body TaskRequest true "Task changes"
// @Success 200 {object} models.Task
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/phases/{phaseid}/tasks/{taskid} [put]
func (h *TaskHandler) UpdateTask(c *fiber.Ctx) error {
	ids, err := paramIDs(c, "projectid", "phaseid", "taskid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	var body TaskRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.FailureResponse(c, bodyError(err))
	}
	input, err := body.input(c)
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	task, err := services.UpdateTask(requestDB(h.DB, c), ids[0], ids[1], ids[2], input)
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.SuccessResponse(c, task, fiber.StatusOK)
}

// DeleteTask handles DELETE /api/projects/:projectid/phases/:phaseid/tasks/:taskid
// @Summary Delete a task
// @Tags Tasks
// @Produce json
// @Param projectid path int true "Project ID"
// @Param phaseid path int true "Phase ID"
// @Param taskid path int true "Task ID"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/phases/{phaseid}/tasks/{taskid} [delete]
func (h *TaskHandler) DeleteTask(c *fiber.Ctx) error {
	ids, err := paramIDs(c, "projectid", "phaseid", "taskid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	if err := services.DeleteTask(requestDB(h.DB, c), ids[0], ids[1], ids[2]); err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.MessageResponse(c, "Task deleted successfully")
}

// AssignUser handles POST /api/projects/:projectid/phases/:phaseid/tasks/:taskid/assign
// @Summary Assign a user to a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param projectid path int true "Project ID"
// @Param phaseid path int true "Phase ID"
// @Param taskid path int true "Task ID"
// @Param assignment body AssignRequest true "User to assign"
// @Success 201 {object} models.TaskAssignment
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/phases/{phaseid}/tasks/{taskid}/assign [post]
func (h *TaskHandler) AssignUser(c *fiber.Ctx) error {
	ids, err := paramIDs(c, "projectid", "phaseid", "taskid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	var body AssignRequest
	if err := c.BodyParser(&body); err != nil {
		return utils.FailureResponse(c, bodyError(err))
	}

	assignment, err := services.AssignUser(requestDB(h.DB, c), ids[0], ids[1], ids[2], body.UserID.Uint64())
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.SuccessResponse(c, assignment, fiber.StatusCreated)
}

// UnassignUser handles DELETE /api/projects/:projectid/phases/:phaseid/tasks/:taskid/assign
// @Summary Remove a user from a task
// @Tags Tasks
// @Accept json
// @Produce json
// @Param projectid path int true "Project ID"
// @Param phaseid path int true "Phase ID"
// @Param taskid path int true "Task ID"
// @Param assignment body AssignRequest true "User to remove"
// @Success 200 {object} utils.MessageResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /projects/{projectid}/phases/{phaseid}/tasks/{taskid}/assign [delete]
func (h *TaskHandler) UnassignUser(c *fiber.Ctx) error {
	ids, err := paramIDs(c, "projectid", "phaseid", "taskid")
	if err != nil {
		return utils.FailureResponse(c, err)
	}

	var body AssignRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return utils.FailureResponse(c, bodyError(err))
		}
	}
	if body.UserID == 0 {
		if q := c.QueryInt("userid"); q > 0 {
			body.UserID = types.FlexUint64(q)
		}
	}

	if err := services.UnassignUser(requestDB(h.DB, c), ids[0], ids[1], ids[2], body.UserID.Uint64()); err != nil {
		return utils.FailureResponse(c, err)
	}

	return utils.MessageResponse(c, "Task assignment removed successfully")
}
