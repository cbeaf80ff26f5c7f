// common.go
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

package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/middleware"
	"github.com/localnerve/projectsdb/internal/types"
	"gorm.io/gorm"
)

// paramID parses a numeric path parameter
func paramID(c *fiber.Ctx, name string) (uint64, error) {
	raw := c.Params(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, types.ValidationError("Invalid " + name + ": " + raw)
	}
	return id, nil
}

// paramIDs parses several numeric path parameters in order
func paramIDs(c *fiber.Ctx, names ...string) ([]uint64, error) {
	ids := make([]uint64, len(names))
	for i, name := range names {
		id, err := paramID(c, name)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}

// requestDB scopes a handler's database to the request context
func requestDB(db *gorm.DB, c *fiber.Ctx) *gorm.DB {
	return db.WithContext(c.UserContext())
}

// currentUserID returns the authenticated user's id, or zero without a session
func currentUserID(c *fiber.Ctx) uint64 {
	if user := middleware.CurrentUser(c); user != nil {
		return user.UserID
	}
	return 0
}

// parseDate accepts an RFC 3339 timestamp or a plain date; blank means no date
func parseDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, types.ValidationError("Invalid date: " + value)
}

// bodyError reports a malformed JSON body
func bodyError(err error) error {
	return types.ValidationError("Invalid request body: " + err.Error())
}
