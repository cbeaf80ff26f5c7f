// report_test.go
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

package handlers_test

import (
	"bytes"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/localnerve/projectsdb/internal/testutil"
)

func readBody(t *testing.T, r io.Reader) []byte {
	t.Helper()
	body, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	return body
}

// TestGeneratePDF tests rendering a posted project document
func TestGeneratePDF(t *testing.T) {
	ta := newTestApp(t, appOptions{})

	resp := ta.send(t, "POST", "/api/generate-pdf", map[string]interface{}{
		"name":        "Acme Spring Launch",
		"client_name": "Acme",
		"phases": []map[string]interface{}{
			{"name": "Discovery", "tasks": []map[string]interface{}{
				{"name": "Brief", "assigned_to": "Dana", "status": "Completed", "estimated_hours": 2.5},
			}},
		},
	})
	testutil.AssertStatus(t, resp, 200)

	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Expected application/pdf, got %q", ct)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="Acme_Spring_Launch_Report.pdf"` {
		t.Errorf("Unexpected Content-Disposition %q", cd)
	}
	if body := readBody(t, resp.Body); !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Errorf("Expected a PDF document")
	}
}

func TestGeneratePDFValidation(t *testing.T) {
	ta := newTestApp(t, appOptions{})

	req := httptest.NewRequest("POST", "/api/generate-pdf", nil)
	req.Header.Set("Content-Type", "application/json")
	resp := ta.do(t, req)
	testutil.AssertStatus(t, resp, 400)

	resp = ta.send(t, "POST", "/api/generate-pdf", map[string]interface{}{"phases": []interface{}{}})
	testutil.AssertStatus(t, resp, 400)

	req = httptest.NewRequest("POST", "/api/generate-pdf", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	resp = ta.do(t, req)
	testutil.AssertStatus(t, resp, 400)
}

func TestProjectReport(t *testing.T) {
	ta := newTestApp(t, appOptions{})
	project := testutil.CreateProject(t, ta.db, "Acme Spring Launch", "SEO", 1)
	testutil.CreatePhase(t, ta.db, project.ProjectID, "Discovery", 1, "Brief", "Audit")

	resp := ta.send(t, "GET", projectPath(project.ProjectID)+"/report", nil)
	testutil.AssertStatus(t, resp, 200)
	if cd := resp.Header.Get("Content-Disposition"); !strings.Contains(cd, "Acme_Spring_Launch_Report.pdf") {
		t.Errorf("Unexpected Content-Disposition %q", cd)
	}
	if body := readBody(t, resp.Body); !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Errorf("Expected a PDF document")
	}

	resp = ta.send(t, "GET", "/api/projects/999/report", nil)
	testutil.AssertStatus(t, resp, 404)
}
