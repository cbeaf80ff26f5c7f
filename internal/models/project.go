package models

import "time"

// Work statuses shared by phases and tasks
const (
	StatusNotStarted = "Not Started"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

// IsStatus reports whether s is a known phase/task status
func IsStatus(s string) bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Project is the root of a provisioned phase/task tree
type Project struct {
	ProjectID        uint64            `gorm:"primaryKey;autoIncrement" json:"projectid"`
	ProjectName      string            `gorm:"size:255;not null" json:"projectname"`
	Description      string            `gorm:"type:text" json:"description"`
	ProjectType      string            `gorm:"size:64;not null;index" json:"projecttype"`
	CreatedByUserID  uint64            `gorm:"not null;index" json:"createdbyuserid"`
	CreatedAt        time.Time         `gorm:"index" json:"createdat"`
	Phases           []Phase           `gorm:"foreignKey:ProjectID;references:ProjectID" json:"phases,omitempty"`
	ProjectTemplates []ProjectTemplate `gorm:"foreignKey:ProjectID;references:ProjectID" json:"projecttemplates,omitempty"`
}

// ProjectTemplate records a template bound to a project at creation time
type ProjectTemplate struct {
	ProjectID  uint64    `gorm:"primaryKey;autoIncrement:false" json:"projectid"`
	TemplateID uint64    `gorm:"primaryKey;autoIncrement:false" json:"templateid"`
	IsActive   bool      `gorm:"not null" json:"isactive"`
	Template   *Template `gorm:"foreignKey:TemplateID;references:TemplateID" json:"templates,omitempty"`
}

// Phase is a project-scoped stage of work, cloned from a TemplatePhase or added by a user
type Phase struct {
	PhaseID     uint64     `gorm:"primaryKey;autoIncrement" json:"phaseid"`
	ProjectID   uint64     `gorm:"not null;index" json:"projectid"`
	TemplateID  *uint64    `gorm:"index" json:"templateid"`
	PhaseName   string     `gorm:"size:255;not null" json:"phasename"`
	PhaseOrder  int        `gorm:"not null;default:0" json:"phaseorder"`
	Status      string     `gorm:"size:32;not null" json:"status"`
	CompletedBy *uint64    `json:"completedby"`
	CompletedAt *time.Time `json:"completedat"`
	CreatedAt   time.Time  `json:"createdat"`
	Tasks       []Task     `gorm:"foreignKey:PhaseID;references:PhaseID" json:"tasks,omitempty"`
	Project     *Project   `gorm:"foreignKey:ProjectID;references:ProjectID" json:"projects,omitempty"`
}

// Task is the smallest trackable unit of work
type Task struct {
	TaskID          uint64           `gorm:"primaryKey;autoIncrement" json:"taskid"`
	PhaseID         uint64           `gorm:"not null;index" json:"phaseid"`
	TemplateID      *uint64          `gorm:"index" json:"templateid"`
	TaskDescription string           `gorm:"type:text;not null" json:"taskdescription"`
	Status          string           `gorm:"size:32;not null" json:"status"`
	DueDate         *time.Time       `json:"duedate"`
	CompletedBy     *uint64          `json:"completedby"`
	CompletedAt     *time.Time       `json:"completedat"`
	CreatedAt       time.Time        `json:"createdat"`
	Assignments     []TaskAssignment `gorm:"foreignKey:TaskID;references:TaskID" json:"taskassignments,omitempty"`
	Phase           *Phase           `gorm:"foreignKey:PhaseID;references:PhaseID" json:"phases,omitempty"`
}

// TaskAssignment binds a user to a task, independent of task status
type TaskAssignment struct {
	TaskID      uint64     `gorm:"primaryKey;autoIncrement:false" json:"taskid"`
	UserID      uint64     `gorm:"primaryKey;autoIncrement:false" json:"userid"`
	AssignedAt  time.Time  `gorm:"not null" json:"assignedat"`
	CompletedAt *time.Time `json:"completedat"`
	User        *User      `gorm:"foreignKey:UserID;references:UserID" json:"users,omitempty"`
	Task        *Task      `gorm:"foreignKey:TaskID;references:TaskID" json:"tasks,omitempty"`
}

// TableName overrides the table name for Project
func (Project) TableName() string {
	return "projects"
}

// TableName overrides the table name for ProjectTemplate
func (ProjectTemplate) TableName() string {
	return "project_templates"
}

// TableName overrides the table name for Phase
func (Phase) TableName() string {
	return "phases"
}

// TableName overrides the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// TableName overrides the table name for TaskAssignment
func (TaskAssignment) TableName() string {
	return "task_assignments"
}
