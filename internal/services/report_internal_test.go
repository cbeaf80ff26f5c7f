// report_internal_test.go
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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRollupStatus(t *testing.T) {
	assert.Equal(t, "Not Started", rollupStatus(nil))
	assert.Equal(t, "Completed", rollupStatus([]string{"Completed", "Completed"}))
	assert.Equal(t, "In Progress", rollupStatus([]string{"Completed", "Not Started"}))
	assert.Equal(t, "Not Started", rollupStatus([]string{"Not Started"}))
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "2026-03-01", displayDate("2026-03-01T10:30:00Z"))
	assert.Equal(t, "2026-03-01", displayDate("2026-03-01"))
	assert.Equal(t, "next spring", displayDate("next spring"))
}
