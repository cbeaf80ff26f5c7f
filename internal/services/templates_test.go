// templates_test.go
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

package services_test

import (
	"testing"

	"github.com/localnerve/projectsdb/data"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/testutil"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListTemplatesEmpty(t *testing.T) {
	db := testutil.NewTestDB(t)

	templates, err := services.ListTemplates(db)
	require.NoError(t, err)
	assert.NotNil(t, templates)
	assert.Empty(t, templates)
}

func TestListTemplatesOrdered(t *testing.T) {
	db := testutil.NewTestDB(t)
	testutil.CreateTemplate(t, db, "Ordered", models.CategorySEO,
		testutil.PhaseSpec{Name: "Later", Order: 5, Tasks: []string{"x"}},
		testutil.PhaseSpec{Name: "Sooner", Order: 1, Tasks: []string{"first", "second"}},
	)

	templates, err := services.ListTemplates(db)
	require.NoError(t, err)
	require.Len(t, templates, 1)
	require.Len(t, templates[0].Phases, 2)

	assert.Equal(t, "Sooner", templates[0].Phases[0].PhaseName)
	assert.Equal(t, "Later", templates[0].Phases[1].PhaseName)
	require.Len(t, templates[0].Phases[0].Tasks, 2)
	assert.Equal(t, "first", templates[0].Phases[0].Tasks[0].TaskDescription)
}

func TestSeedTemplates(t *testing.T) {
	db := testutil.NewTestDB(t)

	catalog, err := data.DefaultCatalog()
	require.NoError(t, err)

	result, err := services.SeedTemplates(db, catalog)
	require.NoError(t, err)
	assert.Equal(t, &services.SeedResult{Created: 5}, result)
	assert.EqualValues(t, 5, testutil.Count(t, db, &models.Template{}))
	assert.EqualValues(t, 44, testutil.Count(t, db, &models.TemplatePhase{}))
	assert.EqualValues(t, 189, testutil.Count(t, db, &models.TemplateTask{}))

	again, err := services.SeedTemplates(db, catalog)
	require.NoError(t, err)
	assert.Equal(t, &services.SeedResult{}, again, "seeding twice changes nothing")
	assert.EqualValues(t, 44, testutil.Count(t, db, &models.TemplatePhase{}))

	catalog.Templates[0].Description = "Refreshed"
	refreshed, err := services.SeedTemplates(db, catalog)
	require.NoError(t, err)
	assert.Equal(t, &services.SeedResult{Updated: 1}, refreshed)

	var seo models.Template
	require.NoError(t, db.Where("template_name = ?", catalog.Templates[0].Name).First(&seo).Error)
	assert.Equal(t, "Refreshed", seo.Description)
}

func TestSeedTemplatesRejectsUnknownCategory(t *testing.T) {
	db := testutil.NewTestDB(t)

	_, err := services.SeedTemplates(db, &data.Catalog{Templates: []data.CatalogTemplate{
		{Name: "Good", Category: models.CategorySEO},
		{Name: "Bad", Category: "Podcasting"},
	}})
	assert.True(t, types.IsKind(err, types.KindValidation))
	assert.Zero(t, testutil.Count(t, db, &models.Template{}), "the seed is all or nothing")

	_, err = services.SeedTemplates(db, nil)
	assert.True(t, types.IsKind(err, types.KindValidation))
}
