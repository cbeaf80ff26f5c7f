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

package services

import (
	"github.com/localnerve/projectsdb/data"
	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/samber/lo"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// SeedResult reports what SeedTemplates changed
type SeedResult struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// ListTemplates returns every template with its ordered phases and tasks
func ListTemplates(db *gorm.DB) ([]models.Template, error) {
	quiet := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Clauses(hints.CommentBefore("select", "templates.list"))

	templates, err := loadTemplates(quiet)
	if err != nil {
		return nil, err
	}
	if templates == nil {
		templates = []models.Template{}
	}
	return templates, nil
}

// SeedTemplates upserts the catalog by template name. New templates are created with their
// phase/task tree; existing templates only get their category and description refreshed, so
// running the seed twice changes nothing.
func SeedTemplates(db *gorm.DB, catalog *data.Catalog) (*SeedResult, error) {
	if catalog == nil {
		return nil, types.ValidationError("Template catalog is required")
	}

	result := &SeedResult{}
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, entry := range catalog.Templates {
			if !models.IsCategory(entry.Category) {
				return types.ValidationError("Unknown template category: " + entry.Category)
			}

			var existing models.Template
			err := tx.Where("template_name = ?", entry.Name).Limit(1).Find(&existing).Error
			if err != nil {
				return storeError("Failed to read templates", err)
			}

			if existing.TemplateID != 0 {
				if existing.Category == entry.Category && existing.Description == entry.Description {
					continue
				}
				if err := tx.Model(&existing).Updates(map[string]interface{}{
					"category":    entry.Category,
					"description": entry.Description,
				}).Error; err != nil {
					return storeError("Failed to update template", err)
				}
				result.Updated++
				continue
			}

			template := models.Template{
				TemplateName: entry.Name,
				Category:     entry.Category,
				Description:  entry.Description,
				Phases: lo.Map(entry.Phases, func(p data.CatalogPhase, _ int) models.TemplatePhase {
					return models.TemplatePhase{
						PhaseName:  p.Name,
						PhaseOrder: p.Order,
						Tasks: lo.Map(p.Tasks, func(description string, _ int) models.TemplateTask {
							return models.TemplateTask{TaskDescription: description}
						}),
					}
				}),
			}
			if err := tx.Create(&template).Error; err != nil {
				return storeError("Failed to create template", err)
			}
			result.Created++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logutils.Log.WithFields(logutils.Fields{
		"created": result.Created,
		"updated": result.Updated,
	}).Info("Template catalog seeded")

	return result, nil
}
