// report.go
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
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/samber/lo"
)

// ReportTask is one row of a phase table in the project report
type ReportTask struct {
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name"`
	AssignedTo     string   `json:"assigned_to,omitempty"`
	Status         string   `json:"status,omitempty"`
	Priority       string   `json:"priority,omitempty"`
	DueDate        string   `json:"due_date,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
}

// ReportPhase is one phase section of the project report
type ReportPhase struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Status      string       `json:"status,omitempty"`
	Tasks       []ReportTask `json:"tasks"`
}

// ReportProject is the document rendered by RenderProjectReport
type ReportProject struct {
	ID                   string        `json:"id,omitempty"`
	Name                 string        `json:"name"`
	ClientName           string        `json:"client_name,omitempty"`
	ProjectType          string        `json:"project_type,omitempty"`
	WebsiteURL           string        `json:"website_url,omitempty"`
	Description          string        `json:"description,omitempty"`
	Status               string        `json:"status,omitempty"`
	StartDate            string        `json:"start_date,omitempty"`
	TargetCompletionDate string        `json:"target_completion_date,omitempty"`
	Phases               []ReportPhase `json:"phases"`
}

const (
	reportMarginX    = 20.0
	reportPageBottom = 270.0
	reportLineHeight = 5.0
)

var reportTableHeader = []string{"Task", "Assigned To", "Status", "Priority", "Due Date", "Est. Hours"}
var reportColumnWidths = []float64{62, 30, 22, 18, 22, 16}

var fileNameUnsafe = regexp.MustCompile(`\s+`)

// ReportFileName is the attachment name of a project's report
func ReportFileName(project *ReportProject) string {
	return fileNameUnsafe.ReplaceAllString(strings.TrimSpace(project.Name), "_") + "_Report.pdf"
}

// ReportFromProject builds a report document from a stored project tree
func ReportFromProject(project *models.Project) *ReportProject {
	report := &ReportProject{
		ID:          strconv.FormatUint(project.ProjectID, 10),
		Name:        project.ProjectName,
		ProjectType: project.ProjectType,
		Description: project.Description,
		StartDate:   project.CreatedAt.Format(time.DateOnly),
	}

	statuses := make([]string, 0, len(project.Phases))
	for _, phase := range project.Phases {
		statuses = append(statuses, phase.Status)
		report.Phases = append(report.Phases, ReportPhase{
			ID:     strconv.FormatUint(phase.PhaseID, 10),
			Name:   phase.PhaseName,
			Status: phase.Status,
			Tasks: lo.Map(phase.Tasks, func(task models.Task, _ int) ReportTask {
				row := ReportTask{
					ID:     strconv.FormatUint(task.TaskID, 10),
					Name:   task.TaskDescription,
					Status: task.Status,
					AssignedTo: strings.Join(lo.FilterMap(task.Assignments, func(a models.TaskAssignment, _ int) (string, bool) {
						if a.User == nil {
							return "", false
						}
						return a.User.Name, true
					}), ", "),
				}
				if task.DueDate != nil {
					row.DueDate = task.DueDate.Format(time.DateOnly)
				}
				return row
			}),
		})
	}
	report.Status = rollupStatus(statuses)

	return report
}

// RenderProjectReport writes the PDF report of a project document to w
func RenderProjectReport(w io.Writer, project *ReportProject) error {
	if project == nil || strings.TrimSpace(project.Name) == "" {
		return types.ValidationError("No project data provided")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(project.Name+" - Project Report", true)
	pdf.SetSubject("Project Report", true)
	pdf.SetAuthor("projectsdb", true)
	pdf.SetCreator("projectsdb", true)
	pdf.SetKeywords("project, report, checklist", true)
	pdf.SetMargins(reportMarginX, 20, reportMarginX)
	pdf.SetAutoPageBreak(false, 20)
	pdf.AliasNbPages("{nb}")

	generated := time.Now().Format(time.DateOnly)
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 10, tr(fmt.Sprintf("Generated on %s – Page %d of {nb}", generated, pdf.PageNo())),
			"", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 10, tr(project.Name), "", 1, "C", false, 0, "")

	subtitle := project.ClientName
	if subtitle != "" {
		subtitle = "Client: " + subtitle
	} else if project.ProjectType != "" {
		subtitle = "Type: " + project.ProjectType
	}
	if subtitle != "" {
		pdf.SetFont("Helvetica", "", 14)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(0, 10, tr(subtitle), "", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	status := project.Status
	if status == "" {
		status = models.StatusNotStarted
	}
	pdf.SetTextColor(40, 40, 40)
	writeLabel(pdf, tr, "Project Status:", status)
	if project.WebsiteURL != "" {
		writeLabel(pdf, tr, "Website:", project.WebsiteURL)
	}
	if project.StartDate != "" {
		writeLabel(pdf, tr, "Start Date:", displayDate(project.StartDate))
	}
	if project.TargetCompletionDate != "" {
		writeLabel(pdf, tr, "Target Completion:", displayDate(project.TargetCompletionDate))
	}

	if project.Description != "" {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Description:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		writeParagraph(pdf, 6, tr(project.Description))
		pdf.Ln(5)
	} else {
		pdf.Ln(10)
	}

	if len(project.Phases) > 0 {
		pdf.SetFont("Helvetica", "", 16)
		pdf.SetTextColor(40, 40, 40)
		pdf.CellFormat(0, 10, "Project Phases & Tasks", "", 1, "C", false, 0, "")
		pdf.Ln(5)

		for _, phase := range project.Phases {
			writePhase(pdf, tr, phase)
		}
	}

	if err := pdf.Error(); err != nil {
		return types.ExternalServiceError("Error generating PDF", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return types.ExternalServiceError("Error generating PDF", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return types.ExternalServiceError("Error writing PDF", err)
	}
	return nil
}

func writeLabel(pdf *fpdf.Fpdf, tr func(string) string, label, value string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(45, 8, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 8, tr(value), "", 1, "L", false, 0, "")
}

// writeParagraph writes free text that may run past the page bottom. Table rows place
// themselves with ensureSpace, so automatic page breaks are only on while text flows.
func writeParagraph(pdf *fpdf.Fpdf, lineHeight float64, text string) {
	_, pageHeight := pdf.GetPageSize()
	pdf.SetAutoPageBreak(true, pageHeight-reportPageBottom)
	pdf.MultiCell(0, lineHeight, text, "", "L", false)
	pdf.SetAutoPageBreak(false, 20)
}

func writePhase(pdf *fpdf.Fpdf, tr func(string) string, phase ReportPhase) {
	ensureSpace(pdf, 30)

	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(50, 50, 150)
	pdf.CellFormat(0, 10, tr(phase.Name), "", 1, "L", false, 0, "")

	if phase.Description != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		writeParagraph(pdf, reportLineHeight, tr(phase.Description))
		pdf.Ln(2)
	}

	status := phase.Status
	if status == "" {
		status = models.StatusNotStarted
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(40, 40, 40)
	pdf.CellFormat(0, 7, tr("Status: "+status), "", 1, "L", false, 0, "")

	if len(phase.Tasks) == 0 {
		pdf.SetTextColor(150, 150, 150)
		pdf.CellFormat(0, 10, "No tasks in this phase", "", 1, "L", false, 0, "")
		pdf.Ln(5)
		return
	}

	writeTableHeader(pdf)
	for i, task := range phase.Tasks {
		writeTaskRow(pdf, tr, task, i%2 == 1)
	}
	pdf.Ln(10)
}

func writeTableHeader(pdf *fpdf.Fpdf) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(66, 135, 245)
	pdf.SetTextColor(255, 255, 255)
	for i, title := range reportTableHeader {
		pdf.CellFormat(reportColumnWidths[i], 7, title, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)
}

func writeTaskRow(pdf *fpdf.Fpdf, tr func(string) string, task ReportTask, shaded bool) {
	cells := []string{
		lo.CoalesceOrEmpty(task.Name, "Unnamed Task"),
		lo.CoalesceOrEmpty(task.AssignedTo, "Unassigned"),
		lo.CoalesceOrEmpty(task.Status, models.StatusNotStarted),
		lo.CoalesceOrEmpty(task.Priority, "Medium"),
		"No due date",
		"N/A",
	}
	if task.DueDate != "" {
		cells[4] = displayDate(task.DueDate)
	}
	if task.EstimatedHours != nil {
		cells[5] = strconv.FormatFloat(*task.EstimatedHours, 'f', -1, 64)
	}

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(40, 40, 40)

	lines := 1
	for i, cell := range cells {
		n := len(pdf.SplitLines([]byte(tr(cell)), reportColumnWidths[i]-2))
		lines = max(lines, n)
	}
	height := float64(lines)*reportLineHeight + 2

	if ensureSpace(pdf, height) {
		writeTableHeader(pdf)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(40, 40, 40)
	}

	if shaded {
		pdf.SetFillColor(240, 240, 240)
	} else {
		pdf.SetFillColor(255, 255, 255)
	}

	x, y := pdf.GetXY()
	for i, cell := range cells {
		width := reportColumnWidths[i]
		pdf.Rect(x, y, width, height, "FD")
		pdf.SetXY(x+1, y+1)
		pdf.MultiCell(width-2, reportLineHeight, tr(cell), "", "L", false)
		x += width
		pdf.SetXY(x, y)
	}
	pdf.SetXY(reportMarginX, y+height)
}

// ensureSpace starts a new page when fewer than height mm remain, reporting whether it did
func ensureSpace(pdf *fpdf.Fpdf, height float64) bool {
	if pdf.GetY()+height <= reportPageBottom {
		return false
	}
	pdf.AddPage()
	return true
}

// displayDate shortens RFC 3339 timestamps to their date, leaving anything else as given
func displayDate(value string) string {
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format(time.DateOnly)
		}
	}
	return value
}

// rollupStatus derives a project status from its phases
func rollupStatus(statuses []string) string {
	if len(statuses) == 0 {
		return models.StatusNotStarted
	}
	if lo.EveryBy(statuses, func(s string) bool { return s == models.StatusCompleted }) {
		return models.StatusCompleted
	}
	if lo.SomeBy(statuses, func(s string) bool { return s != models.StatusNotStarted }) {
		return models.StatusInProgress
	}
	return models.StatusNotStarted
}
