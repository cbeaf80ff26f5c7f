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

package services

import (
	"strings"
	"time"

	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// TaskInput carries the writable fields of a task
type TaskInput struct {
	TaskDescription string
	Status          string
	DueDate         *time.Time
	CompletedBy     uint64
	Assignees       []uint64
}

// CreateTask adds a user-defined task to a phase, assigning any listed users in the same transaction
func CreateTask(db *gorm.DB, projectID, phaseID uint64, input TaskInput) (*models.Task, error) {
	input.TaskDescription = strings.TrimSpace(input.TaskDescription)
	if input.TaskDescription == "" {
		return nil, types.ValidationError("Task description is required")
	}
	if input.Status == "" {
		input.Status = models.StatusNotStarted
	}
	if !models.IsStatus(input.Status) {
		return nil, types.ValidationError("Invalid task status")
	}

	var task models.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := findPhase(tx, projectID, phaseID); err != nil {
			return err
		}

		task = models.Task{
			PhaseID:         phaseID,
			TaskDescription: input.TaskDescription,
			Status:          input.Status,
			DueDate:         input.DueDate,
		}
		if input.Status == models.StatusCompleted && input.CompletedBy != 0 {
			now := time.Now().UTC()
			completedBy := input.CompletedBy
			task.CompletedBy = &completedBy
			task.CompletedAt = &now
		}

		if err := tx.Create(&task).Error; err != nil {
			return storeError("Failed to create task", err)
		}

		for _, userID := range lo.Uniq(lo.Compact(input.Assignees)) {
			assignment, err := assignUser(tx, task.TaskID, userID)
			if err != nil {
				return err
			}
			task.Assignments = append(task.Assignments, *assignment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &task, nil
}

// GetTask returns a task of a project phase with its assignments and their users
func GetTask(db *gorm.DB, projectID, phaseID, taskID uint64) (*models.Task, error) {
	quiet := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})

	var task models.Task
	err := scopedTask(quiet, projectID, phaseID).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assigned_at ASC")
		}).
		Preload("Assignments.User").
		Where("tasks.task_id = ?", taskID).
		First(&task).Error
	if err != nil {
		return nil, storeError("Task not found", err)
	}

	return &task, nil
}

// UpdateTask edits a task. The due date is replaced by the supplied value, so omitting it clears it.
func UpdateTask(db *gorm.DB, projectID, phaseID, taskID uint64, input TaskInput) (*models.Task, error) {
	input.TaskDescription = strings.TrimSpace(input.TaskDescription)
	if input.Status != "" && !models.IsStatus(input.Status) {
		return nil, types.ValidationError("Invalid task status")
	}

	var task models.Task
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := scopedTask(tx, projectID, phaseID).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("tasks.task_id = ?", taskID).
			First(&task).Error; err != nil {
			return storeError("Task not found", err)
		}

		updates := map[string]interface{}{"due_date": input.DueDate}
		if input.TaskDescription != "" {
			updates["task_description"] = input.TaskDescription
		}
		if input.Status != "" {
			updates["status"] = input.Status
			for k, v := range completionUpdates(input.Status, input.CompletedBy) {
				updates[k] = v
			}
		}

		if err := tx.Model(&models.Task{}).Where("task_id = ?", taskID).Updates(updates).Error; err != nil {
			return storeError("Failed to update task", err)
		}
		return tx.First(&task, taskID).Error
	})
	if err != nil {
		return nil, storeError("Failed to update task", err)
	}

	return &task, nil
}

// DeleteTask removes a task after its assignments
func DeleteTask(db *gorm.DB, projectID, phaseID, taskID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := findTask(tx, projectID, phaseID, taskID); err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", taskID).Delete(&models.TaskAssignment{}).Error; err != nil {
			return storeError("Failed to delete task assignments", err)
		}
		if err := tx.Where("task_id = ?", taskID).Delete(&models.Task{}).Error; err != nil {
			return storeError("Failed to delete task", err)
		}
		return nil
	})
}

// scopedTask restricts a task query to a phase of a project
func scopedTask(db *gorm.DB, projectID, phaseID uint64) *gorm.DB {
	return db.Model(&models.Task{}).
		Joins("JOIN phases ON phases.phase_id = tasks.phase_id").
		Where("phases.project_id = ? AND tasks.phase_id = ?", projectID, phaseID)
}

func findTask(db *gorm.DB, projectID, phaseID, taskID uint64) (*models.Task, error) {
	var task models.Task
	if err := scopedTask(db, projectID, phaseID).
		Where("tasks.task_id = ?", taskID).
		First(&task).Error; err != nil {
		return nil, storeError("Task not found", err)
	}
	return &task, nil
}
