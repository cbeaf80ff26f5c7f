// fixtures.go
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

package testutil

import (
	"testing"

	"github.com/localnerve/projectsdb/internal/models"
	"gorm.io/gorm"
)

// PhaseSpec describes a template phase fixture
type PhaseSpec struct {
	Name  string
	Order int
	Tasks []string
}

// CreateTemplate inserts a template with its phases and tasks in the given order
func CreateTemplate(t *testing.T, db *gorm.DB, name, category string, phases ...PhaseSpec) models.Template {
	t.Helper()

	template := models.Template{
		TemplateName: name,
		Category:     category,
		Description:  name + " fixture",
	}
	if err := db.Create(&template).Error; err != nil {
		t.Fatalf("Failed to create template %s: %v", name, err)
	}

	for _, spec := range phases {
		phase := models.TemplatePhase{
			TemplateID: template.TemplateID,
			PhaseName:  spec.Name,
			PhaseOrder: spec.Order,
		}
		if err := db.Create(&phase).Error; err != nil {
			t.Fatalf("Failed to create template phase %s: %v", spec.Name, err)
		}
		for _, description := range spec.Tasks {
			task := models.TemplateTask{
				TemplatePhaseID: phase.TemplatePhaseID,
				TaskDescription: description,
			}
			if err := db.Create(&task).Error; err != nil {
				t.Fatalf("Failed to create template task %s: %v", description, err)
			}
			phase.Tasks = append(phase.Tasks, task)
		}
		template.Phases = append(template.Phases, phase)
	}

	return template
}

// CreateUser inserts a local user
func CreateUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()

	user := models.User{Name: name, Email: email, Role: role}
	if role == "" {
		user.Role = models.RoleMember
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("Failed to create user %s: %v", email, err)
	}
	return user
}

// CreateProject inserts a bare project without provisioning
func CreateProject(t *testing.T, db *gorm.DB, name, projectType string, creatorID uint64) models.Project {
	t.Helper()

	project := models.Project{
		ProjectName:     name,
		ProjectType:     projectType,
		CreatedByUserID: creatorID,
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("Failed to create project %s: %v", name, err)
	}
	return project
}

// CreatePhase inserts a phase with tasks into a project
func CreatePhase(t *testing.T, db *gorm.DB, projectID uint64, name string, order int, tasks ...string) models.Phase {
	t.Helper()

	phase := models.Phase{
		ProjectID:  projectID,
		PhaseName:  name,
		PhaseOrder: order,
		Status:     models.StatusNotStarted,
	}
	if err := db.Create(&phase).Error; err != nil {
		t.Fatalf("Failed to create phase %s: %v", name, err)
	}
	for _, description := range tasks {
		task := models.Task{
			PhaseID:         phase.PhaseID,
			TaskDescription: description,
			Status:          models.StatusNotStarted,
		}
		if err := db.Create(&task).Error; err != nil {
			t.Fatalf("Failed to create task %s: %v", description, err)
		}
		phase.Tasks = append(phase.Tasks, task)
	}
	return phase
}

// Count returns the number of rows of model
func Count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()

	var n int64
	if err := db.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("Failed to count rows: %v", err)
	}
	return n
}
