// flex_test.go
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

package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexUint64(t *testing.T) {
	tests := []struct {
		input string
		want  uint64
	}{
		{`{"userid": 42}`, 42},
		{`{"userid": "42"}`, 42},
		{`{"userid": " 7 "}`, 7},
		{`{"userid": ""}`, 0},
		{`{"userid": null}`, 0},
		{`{}`, 0},
	}

	for _, tt := range tests {
		var body struct {
			UserID FlexUint64 `json:"userid"`
		}
		require.NoError(t, json.Unmarshal([]byte(tt.input), &body), tt.input)
		assert.Equal(t, tt.want, body.UserID.Uint64(), tt.input)
	}

	for _, bad := range []string{`{"userid": "abc"}`, `{"userid": -1}`, `{"userid": true}`} {
		var body struct {
			UserID FlexUint64 `json:"userid"`
		}
		assert.Error(t, json.Unmarshal([]byte(bad), &body), bad)
	}

	raw, err := json.Marshal(FlexUint64(9))
	require.NoError(t, err)
	assert.Equal(t, "9", string(raw))
}

func TestFlexList(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{`{"teams": ["default", "software"]}`, []string{"default", "software"}},
		{`{"teams": "software"}`, []string{"software"}},
		{`{"teams": "default, software,"}`, []string{"default", "software"}},
		{`{"teams": null}`, nil},
		{`{}`, nil},
	}

	for _, tt := range tests {
		var body struct {
			Teams FlexList[string] `json:"teams"`
		}
		require.NoError(t, json.Unmarshal([]byte(tt.input), &body), tt.input)
		assert.Equal(t, tt.want, body.Teams.Slice(), tt.input)
	}

	var ids struct {
		IDs FlexList[int] `json:"ids"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"ids": 3}`), &ids))
	assert.Equal(t, []int{3}, ids.IDs.Slice())

	assert.Equal(t, []string{"default"}, FlexList[string](nil).OrDefault("default"))
	assert.Equal(t, []string{"a"}, FlexList[string]{"a"}.OrDefault("default"))
}

func TestAppError(t *testing.T) {
	cause := errors.New("connection reset")
	err := PersistenceError("Failed to fetch projects", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, KindPersistence, KindOf(err))
	assert.Equal(t, "persistence: Failed to fetch projects: connection reset", err.Error())

	assert.True(t, errors.Is(NotFoundError("Project not found"), ErrNotFound))
	assert.Equal(t, "validation: Name is required", ValidationError("Name is required").Error())
	assert.Equal(t, ErrorKind(""), KindOf(cause))
	assert.True(t, IsKind(AuthError("invalid_credentials", "Invalid email or password", nil), KindAuth))
	assert.True(t, IsKind(ExternalServiceError("Slack failed", cause), KindExternal))
}
