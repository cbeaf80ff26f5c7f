// users.go
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

	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Identity is what the auth server knows about a signed-in user
type Identity struct {
	AuthID   string
	Email    string
	Name     string
	Role     string
	Company  string
	Phone    string
	Metadata map[string]interface{}
}

// ListUsers returns all local users, newest first
func ListUsers(db *gorm.DB) ([]models.User, error) {
	users := []models.User{}
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Order("created_at DESC").
		Order("user_id DESC").
		Find(&users).Error
	if err != nil {
		return nil, storeError("Failed to fetch users", err)
	}
	return users, nil
}

// ProfileInput carries the user-editable profile fields. Nil fields are left unchanged.
type ProfileInput struct {
	Name    *string
	Company *string
	Phone   *string
}

// GetUser returns a local user by id
func GetUser(db *gorm.DB, userID uint64) (*models.User, error) {
	var user models.User
	if err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		First(&user, userID).Error; err != nil {
		return nil, storeError("User not found", err)
	}
	return &user, nil
}

// UpdateProfile edits the name, company and phone of a user
func UpdateProfile(db *gorm.DB, userID uint64, input ProfileInput) (*models.User, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, types.ValidationError("Name cannot be blank")
		}
		updates["name"] = name
	}
	if input.Company != nil {
		updates["company"] = strings.TrimSpace(*input.Company)
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}

	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, userID).Error; err != nil {
			return storeError("User not found", err)
		}
		if len(updates) == 0 {
			return nil
		}
		if err := tx.Model(&models.User{}).Where("user_id = ?", userID).Updates(updates).Error; err != nil {
			return storeError("Failed to update profile", err)
		}
		return tx.First(&user, userID).Error
	})
	if err != nil {
		return nil, storeError("Failed to update profile", err)
	}

	return &user, nil
}

// ListAssignedTasks returns the task assignments of a user, oldest first, each with its
// task, the task's phase and the phase's project
func ListAssignedTasks(db *gorm.DB, userID uint64) ([]models.TaskAssignment, error) {
	quiet := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})

	var count int64
	if err := quiet.Model(&models.User{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return nil, storeError("Failed to fetch user", err)
	}
	if count == 0 {
		return nil, types.NotFoundError("User not found")
	}

	assignments := []models.TaskAssignment{}
	err := quiet.
		Preload("Task.Phase.Project").
		Where("user_id = ?", userID).
		Order("assigned_at ASC").
		Order("task_id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, storeError("Failed to fetch assigned tasks", err)
	}
	return assignments, nil
}

// EnsureUser returns the local user for an identity, creating it from the auth metadata
// when no row matches the auth id or the email
func EnsureUser(db *gorm.DB, identity Identity) (*models.User, error) {
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	if identity.AuthID == "" && identity.Email == "" {
		return nil, types.ValidationError("An auth id or email is required")
	}

	quiet := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})

	var user models.User
	if identity.AuthID != "" {
		if err := quiet.Where("auth_id = ?", identity.AuthID).Limit(1).Find(&user).Error; err != nil {
			return nil, storeError("Failed to fetch user", err)
		}
		if user.UserID != 0 {
			return &user, nil
		}
	}

	if identity.Email != "" {
		if err := quiet.Where("email = ?", identity.Email).Limit(1).Find(&user).Error; err != nil {
			return nil, storeError("Failed to fetch user", err)
		}
		if user.UserID != 0 {
			if user.AuthID == nil && identity.AuthID != "" {
				authID := identity.AuthID
				if err := db.Model(&user).Update("auth_id", authID).Error; err != nil {
					return nil, storeError("Failed to link user", err)
				}
				user.AuthID = &authID
			}
			return &user, nil
		}
	}

	if identity.Email == "" {
		return nil, types.AuthError("unknown_user", "No local user for this identity", nil)
	}

	profile, err := models.NewJSON(identity.Metadata)
	if err != nil {
		return nil, types.ValidationError("Invalid user metadata")
	}

	user = models.User{
		Name:    displayName(identity),
		Email:   identity.Email,
		Role:    identity.Role,
		Company: identity.Company,
		Phone:   identity.Phone,
		Profile: profile,
	}
	if user.Role == "" {
		user.Role = models.RoleMember
	}
	if identity.AuthID != "" {
		authID := identity.AuthID
		user.AuthID = &authID
	}

	if err := db.Create(&user).Error; err != nil {
		return nil, storeError("Failed to create user", err)
	}

	logutils.Log.WithFields(logutils.Fields{
		"userid": user.UserID,
		"email":  user.Email,
	}).Info("Created local user from auth identity")

	return &user, nil
}

// displayName picks the user's name, falling back to the email local part, then "User"
func displayName(identity Identity) string {
	if name := strings.TrimSpace(identity.Name); name != "" {
		return name
	}
	if local, _, found := strings.Cut(identity.Email, "@"); found && local != "" {
		return local
	}
	return "User"
}
