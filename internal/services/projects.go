package services

import (
	"strings"

	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/hints"
)

// StatusCounts tallies rows by work status
type StatusCounts struct {
	Total      int `json:"total"`
	NotStarted int `json:"notstarted"`
	InProgress int `json:"inprogress"`
	Completed  int `json:"completed"`
}

// ProjectProgress summarizes the completion state of a project
type ProjectProgress struct {
	ProjectID  uint64       `json:"projectid"`
	Phases     StatusCounts `json:"phases"`
	Tasks      StatusCounts `json:"tasks"`
	Percentage int          `json:"percentage"`
}

func (s *StatusCounts) add(status string) {
	s.Total++
	switch status {
	case models.StatusCompleted:
		s.Completed++
	case models.StatusInProgress:
		s.InProgress++
	default:
		s.NotStarted++
	}
}

// ListProjects returns projects newest first, optionally filtered by project type
func ListProjects(db *gorm.DB, category string) ([]models.Project, error) {
	query := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Clauses(hints.CommentBefore("select", "projects.list")).
		Preload("ProjectTemplates.Template").
		Order("created_at DESC").
		Order("project_id DESC")

	if category = strings.TrimSpace(category); category != "" {
		query = query.Where("project_type = ?", category)
	}

	projects := []models.Project{}
	if err := query.Find(&projects).Error; err != nil {
		return nil, storeError("Failed to fetch projects", err)
	}

	return projects, nil
}

// GetProjectDetail returns a project with its full phase/task/assignment tree and linked templates
func GetProjectDetail(db *gorm.DB, projectID uint64) (*models.Project, error) {
	var project models.Project
	err := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)}).
		Clauses(hints.CommentBefore("select", "projects.detail")).
		Preload("Phases", func(db *gorm.DB) *gorm.DB {
			return db.Order("phase_order ASC").Order("phase_id ASC")
		}).
		Preload("Phases.Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("task_id ASC")
		}).
		Preload("Phases.Tasks.Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assigned_at ASC")
		}).
		Preload("Phases.Tasks.Assignments.User").
		Preload("ProjectTemplates.Template").
		Where("project_id = ?", projectID).
		First(&project).Error
	if err != nil {
		return nil, storeError("Project not found", err)
	}

	return &project, nil
}

// GetProjectProgress counts phases and tasks of a project by status
func GetProjectProgress(db *gorm.DB, projectID uint64) (*ProjectProgress, error) {
	if err := projectExists(db, projectID); err != nil {
		return nil, err
	}

	quiet := db.Session(&gorm.Session{Logger: db.Logger.LogMode(logger.Silent)})
	progress := &ProjectProgress{ProjectID: projectID}

	var phaseStatuses []string
	if err := quiet.Model(&models.Phase{}).
		Where("project_id = ?", projectID).
		Pluck("status", &phaseStatuses).Error; err != nil {
		return nil, storeError("Failed to count phases", err)
	}
	for _, status := range phaseStatuses {
		progress.Phases.add(status)
	}

	var taskStatuses []string
	if err := quiet.Model(&models.Task{}).
		Joins("JOIN phases ON phases.phase_id = tasks.phase_id").
		Where("phases.project_id = ?", projectID).
		Pluck("tasks.status", &taskStatuses).Error; err != nil {
		return nil, storeError("Failed to count tasks", err)
	}
	for _, status := range taskStatuses {
		progress.Tasks.add(status)
	}

	if progress.Tasks.Total > 0 {
		progress.Percentage = progress.Tasks.Completed * 100 / progress.Tasks.Total
	}

	return progress, nil
}

func projectExists(db *gorm.DB, projectID uint64) error {
	var count int64
	if err := db.Model(&models.Project{}).Where("project_id = ?", projectID).Count(&count).Error; err != nil {
		return storeError("Failed to fetch project", err)
	}
	if count == 0 {
		return types.NotFoundError("Project not found")
	}
	return nil
}
