// provisioning.go
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
	"slices"
	"strings"

	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
)

// ProjectInput is the request to create a project from the template catalog
type ProjectInput struct {
	Name            string
	Description     string
	Type            string
	CreatorUserID   uint64
	UseAllTemplates bool
}

// ProvisionResult counts the rows materialized for a new project
type ProvisionResult struct {
	Project models.Project
	Links   int
	Phases  int
	Tasks   int
}

// CreateProjectWithTemplates creates a project and clones the phase/task tree of every template
// into it. The whole sequence runs in one transaction, so a failure leaves no partial project.
// The operation is not idempotent: identical calls create independent projects.
func CreateProjectWithTemplates(db *gorm.DB, input ProjectInput) (*models.Project, error) {
	result, err := ProvisionProject(db, input)
	if err != nil {
		return nil, err
	}
	return &result.Project, nil
}

// ProvisionProject is CreateProjectWithTemplates, also reporting how many rows were created
func ProvisionProject(db *gorm.DB, input ProjectInput) (*ProvisionResult, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Type = strings.TrimSpace(input.Type)

	if input.Name == "" || input.Type == "" {
		return nil, types.ValidationError("Project name and type are required")
	}
	if input.CreatorUserID == 0 {
		return nil, types.ValidationError("A creator user id is required")
	}

	result := &ProvisionResult{}

	err := db.Transaction(func(tx *gorm.DB) error {
		project := models.Project{
			ProjectName:     input.Name,
			Description:     input.Description,
			ProjectType:     input.Type,
			CreatedByUserID: input.CreatorUserID,
		}
		if err := tx.Create(&project).Error; err != nil {
			return storeError("Failed to create project", err)
		}
		result.Project = project

		templates, err := loadTemplates(tx)
		if err != nil {
			return err
		}

		if !input.UseAllTemplates {
			return nil
		}

		if len(templates) > 0 {
			links := lo.Map(templates, func(t models.Template, _ int) models.ProjectTemplate {
				return models.ProjectTemplate{
					ProjectID:  project.ProjectID,
					TemplateID: t.TemplateID,
					IsActive:   true,
				}
			})
			if err := tx.Create(&links).Error; err != nil {
				return storeError("Failed to link templates", err)
			}
			result.Links = len(links)
		}

		for _, template := range templates {
			templateID := template.TemplateID

			for _, templatePhase := range template.Phases {
				phase := models.Phase{
					ProjectID:  project.ProjectID,
					TemplateID: &templateID,
					PhaseName:  templatePhase.PhaseName,
					PhaseOrder: templatePhase.PhaseOrder,
					Status:     models.StatusNotStarted,
				}
				if err := tx.Create(&phase).Error; err != nil {
					return storeError("Failed to create phase", err)
				}
				result.Phases++

				if len(templatePhase.Tasks) == 0 {
					continue
				}

				tasks := lo.Map(templatePhase.Tasks, func(tt models.TemplateTask, _ int) models.Task {
					return models.Task{
						PhaseID:         phase.PhaseID,
						TemplateID:      &templateID,
						TaskDescription: tt.TaskDescription,
						Status:          models.StatusNotStarted,
					}
				})
				if err := tx.Create(&tasks).Error; err != nil {
					return storeError("Failed to create tasks", err)
				}
				result.Tasks += len(tasks)
			}
		}

		return nil
	})
	if err != nil {
		provisioningFailures.Inc()
		logutils.Log.WithError(err).WithFields(logutils.Fields{
			"project": input.Name,
			"type":    input.Type,
		}).Error("Project provisioning rolled back")
		return nil, err
	}

	projectsProvisioned.Inc()
	phasesProvisioned.Add(float64(result.Phases))
	tasksProvisioned.Add(float64(result.Tasks))

	logutils.Log.WithFields(logutils.Fields{
		"projectid": result.Project.ProjectID,
		"links":     result.Links,
		"phases":    result.Phases,
		"tasks":     result.Tasks,
	}).Info("Project provisioned")

	return result, nil
}

// loadTemplates fetches every template with its phases and their tasks, in provisioning order:
// templates by id, phases by phase order with ties kept in fetch order, tasks by id.
func loadTemplates(db *gorm.DB) ([]models.Template, error) {
	var templates []models.Template
	err := db.
		Preload("Phases", func(db *gorm.DB) *gorm.DB {
			return db.Order("phase_order ASC").Order("template_phase_id ASC")
		}).
		Preload("Phases.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("template_task_id ASC")
		}).
		Order("template_id ASC").
		Find(&templates).Error
	if err != nil {
		return nil, storeError("Failed to fetch templates", err)
	}

	for i := range templates {
		slices.SortStableFunc(templates[i].Phases, func(a, b models.TemplatePhase) int {
			return a.PhaseOrder - b.PhaseOrder
		})
	}

	return templates, nil
}
