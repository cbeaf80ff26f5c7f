// store_errors_test.go
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
	"errors"
	"fmt"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/localnerve/projectsdb/internal/types"
	mssql "github.com/microsoft/go-mssqldb"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateKey(t *testing.T) {
	assert.False(t, isDuplicateKey(nil))
	assert.True(t, isDuplicateKey(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateKey(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})))
	assert.False(t, isDuplicateKey(&pgconn.PgError{Code: "23503"}))
	assert.True(t, isDuplicateKey(&mysqldriver.MySQLError{Number: 1062}))
	assert.True(t, isDuplicateKey(mssql.Error{Number: 2627}))
	assert.True(t, isDuplicateKey(errors.New("UNIQUE constraint failed: users.email")))
	assert.False(t, isDuplicateKey(errors.New("connection refused")))
}

func TestStoreError(t *testing.T) {
	assert.NoError(t, storeError("unused", nil))

	notFound := storeError("Project not found", gorm.ErrRecordNotFound)
	assert.True(t, errors.Is(notFound, types.ErrNotFound))

	duplicate := storeError("User exists", gorm.ErrDuplicatedKey)
	assert.True(t, errors.Is(duplicate, types.ErrDuplicate))
	assert.True(t, types.IsKind(duplicate, types.KindPersistence))

	generic := storeError("Failed", errors.New("boom"))
	assert.True(t, types.IsKind(generic, types.KindPersistence))
	assert.False(t, errors.Is(generic, types.ErrNotFound))

	validation := types.ValidationError("bad input")
	assert.Same(t, validation, storeError("ignored", validation), "classified errors pass through")
}
