// assignments.go
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
	"errors"
	"time"

	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/types"
	"gorm.io/gorm"
)

// AssignUser binds a user to a task. A (task, user) pair can be assigned only once.
func AssignUser(db *gorm.DB, projectID, phaseID, taskID, userID uint64) (*models.TaskAssignment, error) {
	if userID == 0 {
		return nil, types.ValidationError("User ID is required")
	}

	var assignment *models.TaskAssignment
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := findTask(tx, projectID, phaseID, taskID); err != nil {
			return err
		}
		var err error
		assignment, err = assignUser(tx, taskID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

// assignUser binds a user to an already verified task inside the caller's transaction
func assignUser(tx *gorm.DB, taskID, userID uint64) (*models.TaskAssignment, error) {
	var user models.User
	if err := tx.First(&user, userID).Error; err != nil {
		return nil, storeError("User not found", err)
	}

	var existing int64
	if err := tx.Model(&models.TaskAssignment{}).
		Where("task_id = ? AND user_id = ?", taskID, userID).
		Count(&existing).Error; err != nil {
		return nil, storeError("Failed to read task assignments", err)
	}
	if existing > 0 {
		return nil, duplicateAssignment()
	}

	assignment := models.TaskAssignment{
		TaskID:     taskID,
		UserID:     userID,
		AssignedAt: time.Now().UTC(),
	}
	if err := tx.Create(&assignment).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, duplicateAssignment()
		}
		return nil, storeError("Failed to assign task", err)
	}
	assignment.User = &user
	return &assignment, nil
}

// UnassignUser removes a user from a task
func UnassignUser(db *gorm.DB, projectID, phaseID, taskID, userID uint64) error {
	if userID == 0 {
		return types.ValidationError("User ID is required")
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := findTask(tx, projectID, phaseID, taskID); err != nil {
			return err
		}

		result := tx.Where("task_id = ? AND user_id = ?", taskID, userID).Delete(&models.TaskAssignment{})
		if result.Error != nil {
			return storeError("Failed to remove task assignment", result.Error)
		}
		if result.RowsAffected == 0 {
			return types.NotFoundError("Task assignment not found")
		}
		return nil
	})
}

func duplicateAssignment() error {
	return &types.AppError{
		Kind:    types.KindPersistence,
		Code:    "duplicate",
		Message: "User is already assigned to this task",
		Err:     errors.Join(types.ErrDuplicate, errors.New("task assignment exists")),
	}
}
