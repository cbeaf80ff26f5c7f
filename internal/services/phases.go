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

package services

import (
	"strings"
	"time"

	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PhaseInput carries the writable fields of a phase
type PhaseInput struct {
	PhaseName   string
	PhaseOrder  int // zero means append after the last phase
	Status      string
	CompletedBy uint64
}

// CreatePhase adds a user-defined phase to a project
func CreatePhase(db *gorm.DB, projectID uint64, input PhaseInput) (*models.Phase, error) {
	input.PhaseName = strings.TrimSpace(input.PhaseName)
	if input.PhaseName == "" {
		return nil, types.ValidationError("Phase name is required")
	}

	var phase models.Phase
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := projectExists(tx, projectID); err != nil {
			return err
		}

		order := input.PhaseOrder
		if order == 0 {
			var maxOrder *int
			if err := tx.Model(&models.Phase{}).
				Where("project_id = ?", projectID).
				Select("MAX(phase_order)").
				Scan(&maxOrder).Error; err != nil {
				return storeError("Failed to read phase order", err)
			}
			order = 1
			if maxOrder != nil {
				order = *maxOrder + 1
			}
		}

		phase = models.Phase{
			ProjectID:  projectID,
			PhaseName:  input.PhaseName,
			PhaseOrder: order,
			Status:     models.StatusNotStarted,
		}
		if err := tx.Create(&phase).Error; err != nil {
			return storeError("Failed to create phase", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &phase, nil
}

// UpdatePhase renames a phase and moves it through the status lifecycle
func UpdatePhase(db *gorm.DB, projectID, phaseID uint64, input PhaseInput) (*models.Phase, error) {
	input.PhaseName = strings.TrimSpace(input.PhaseName)
	if input.PhaseName == "" {
		return nil, types.ValidationError("Phase name is required")
	}
	if input.Status != "" && !models.IsStatus(input.Status) {
		return nil, types.ValidationError("Invalid phase status")
	}

	var phase models.Phase
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("project_id = ? AND phase_id = ?", projectID, phaseID).
			First(&phase).Error; err != nil {
			return storeError("Phase not found", err)
		}

		updates := map[string]interface{}{"phase_name": input.PhaseName}
		if input.Status != "" {
			updates["status"] = input.Status
			for k, v := range completionUpdates(input.Status, input.CompletedBy) {
				updates[k] = v
			}
		}

		if err := tx.Model(&phase).Updates(updates).Error; err != nil {
			return storeError("Failed to update phase", err)
		}
		return tx.First(&phase, phaseID).Error
	})
	if err != nil {
		return nil, storeError("Failed to update phase", err)
	}

	return &phase, nil
}

// DeletePhase removes a phase together with its tasks and their assignments
func DeletePhase(db *gorm.DB, projectID, phaseID uint64) error {
	return db.Transaction(func(tx *gorm.DB) error {
		phase, err := findPhase(tx, projectID, phaseID)
		if err != nil {
			return err
		}

		taskIDs := tx.Model(&models.Task{}).Select("task_id").Where("phase_id = ?", phaseID)
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.TaskAssignment{}).Error; err != nil {
			return storeError("Failed to delete task assignments", err)
		}
		if err := tx.Where("phase_id = ?", phaseID).Delete(&models.Task{}).Error; err != nil {
			return storeError("Failed to delete tasks", err)
		}
		if err := tx.Delete(phase).Error; err != nil {
			return storeError("Failed to delete phase", err)
		}
		return nil
	})
}

// completionUpdates returns the completed_by/completed_at columns implied by a status change.
// Completed with a completer records them; any other status clears them.
func completionUpdates(status string, completedBy uint64) map[string]interface{} {
	if status == models.StatusCompleted {
		if completedBy == 0 {
			return nil
		}
		return map[string]interface{}{
			"completed_by": completedBy,
			"completed_at": time.Now().UTC(),
		}
	}
	return map[string]interface{}{
		"completed_by": nil,
		"completed_at": nil,
	}
}

func findPhase(db *gorm.DB, projectID, phaseID uint64) (*models.Phase, error) {
	var phase models.Phase
	if err := db.Where("project_id = ? AND phase_id = ?", projectID, phaseID).
		First(&phase).Error; err != nil {
		return nil, storeError("Phase not found", err)
	}
	return &phase, nil
}
