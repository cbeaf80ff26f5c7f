package models

import "time"

// Template categories
const (
	CategorySEO            = "SEO"
	CategoryEmailMarketing = "Email Marketing"
	CategorySocialMedia    = "Social Media"
	CategoryAutomation     = "Automation"
	CategoryGraphicDesign  = "Graphic Design"
)

// Categories lists the template categories in catalog order
var Categories = []string{
	CategorySEO,
	CategoryEmailMarketing,
	CategorySocialMedia,
	CategoryAutomation,
	CategoryGraphicDesign,
}

// IsCategory reports whether c is a known template category
func IsCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Template is a reusable blueprint of phases and tasks for one marketing discipline
type Template struct {
	TemplateID   uint64          `gorm:"primaryKey;autoIncrement" json:"templateid"`
	TemplateName string          `gorm:"uniqueIndex;size:255;not null" json:"templatename"`
	Category     string          `gorm:"size:64;not null" json:"category"`
	Description  string          `gorm:"type:text" json:"description"`
	CreatedAt    time.Time       `json:"createdat"`
	Phases       []TemplatePhase `gorm:"foreignKey:TemplateID;references:TemplateID" json:"templatephases,omitempty"`
}

// TemplatePhase is an ordered stage of a template
type TemplatePhase struct {
	TemplatePhaseID uint64         `gorm:"primaryKey;autoIncrement" json:"templatephaseid"`
	TemplateID      uint64         `gorm:"not null;index" json:"templateid"`
	PhaseName       string         `gorm:"size:255;not null" json:"phasename"`
	PhaseOrder      int            `gorm:"not null;default:0" json:"phaseorder"`
	Tasks           []TemplateTask `gorm:"foreignKey:TemplatePhaseID;references:TemplatePhaseID" json:"templatetasks,omitempty"`
}

// TemplateTask is a unit of work inside a template phase
type TemplateTask struct {
	TemplateTaskID  uint64 `gorm:"primaryKey;autoIncrement" json:"templatetaskid"`
	TemplatePhaseID uint64 `gorm:"not null;index" json:"templatephaseid"`
	TaskDescription string `gorm:"type:text;not null" json:"taskdescription"`
}

// TableName overrides the table name for Template
func (Template) TableName() string {
	return "templates"
}

// TableName overrides the table name for TemplatePhase
func (TemplatePhase) TableName() string {
	return "template_phases"
}

// TableName overrides the table name for TemplateTask
func (TemplateTask) TableName() string {
	return "template_tasks"
}
