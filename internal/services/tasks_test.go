// tasks_test.go
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
	"errors"
	"testing"
	"time"

	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"github.com/localnerve/projectsdb/internal/testutil"
	"github.com/localnerve/projectsdb/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTask(t *testing.T) {
	db := testutil.NewTestDB(t)
	project := testutil.CreateProject(t, db, "Site", "General", 1)
	phase := testutil.CreatePhase(t, db, project.ProjectID, "Build", 1)
	due := time.Date(2026, 11, 2, 0, 0, 0, 0, time.UTC)

	task, err := services.CreateTask(db, project.ProjectID, phase.PhaseID, services.TaskInput{
		TaskDescription: " Write copy ",
		DueDate:         &due,
	})
	require.NoError(t, err)
	assert.NotZero(t, task.TaskID)
	assert.Equal(t, "Write copy", task.TaskDescription)
	assert.Equal(t, models.StatusNotStarted, task.Status)
	require.NotNil(t, task.DueDate)
	assert.True(t, due.Equal(*task.DueDate))

	done, err := services.CreateTask(db, project.ProjectID, phase.PhaseID, services.TaskInput{
		TaskDescription: "Already shipped",
		Status:          models.StatusCompleted,
		CompletedBy:     9,
	})
	require.NoError(t, err)
	require.NotNil(t, done.CompletedBy)
	assert.EqualValues(t, 9, *done.CompletedBy)
	assert.NotNil(t, done.CompletedAt)
}

func TestCreateTaskErrors(t *testing.T) {
	db := testutil.NewTestDB(t)
	project := testutil.CreateProject(t, db, "Site", "General", 1)
	other := testutil.CreateProject(t, db, "Other", "General", 1)
	phase := testutil.CreatePhase(t, db, project.ProjectID, "Build", 1)

	_, err := services.CreateTask(db, project.ProjectID, phase.PhaseID, services.TaskInput{})
	assert.True(t, types.IsKind(err, types.KindValidation))

	_, err = services.CreateTask(db, project.ProjectID, phase.PhaseID, services.TaskInput{TaskDescription: "x", Status: "Blocked"})
	assert.True(t, types.IsKind(err, types.KindValidation))

	_, err = services.CreateTask(db, other.ProjectID, phase.PhaseID, services.TaskInput{TaskDescription: "x"})
	assert.True(t, errors.Is(err, types.ErrNotFound))

	assert.Zero(t, testutil.Count(t, db, &models.Task{}))
}

func TestUpdateTask(t *testing.T) {
	db := testutil.NewTestDB(t)
	project := testutil.CreateProject(t, db, "Site", "General", 1)
	phase := testutil.CreatePhase(t, db, project.ProjectID, "Build", 1, "Draft")
	taskID := phase.Tasks[0].TaskID
	due := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)

	updated, err := services.UpdateTask(db, project.ProjectID, phase.PhaseID, taskID, services.TaskInput{
		TaskDescription: "Final draft",
		Status:          models.StatusCompleted,
		DueDate:         &due,
		CompletedBy:     4,
	})
	require.NoError(t, err)
	assert.Equal(t, "Final draft", updated.TaskDescription)
	assert.Equal(t, models.StatusCompleted, updated.Status)
	require.NotNil(t, updated.DueDate)
	require.NotNil(t, updated.CompletedBy)
	assert.EqualValues(t, 4, *updated.CompletedBy)

	// Status only: description kept, due date cleared, completion cleared
	reopened, err := services.UpdateTask(db, project.ProjectID, phase.PhaseID, taskID, services.TaskInput{
		Status: models.StatusInProgress,
	})
	require.NoError(t, err)
	assert.Equal(t, "Final draft", reopened.TaskDescription)
	assert.Nil(t, reopened.DueDate)
	assert.Nil(t, reopened.CompletedBy)
	assert.Nil(t, reopened.CompletedAt)

	_, err = services.UpdateTask(db, project.ProjectID, phase.PhaseID, taskID+50, services.TaskInput{Status: models.StatusInProgress})
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestGetAndDeleteTask(t *testing.T) {
	db := testutil.NewTestDB(t)
	user := testutil.CreateUser(t, db, "Rae", "rae@example.com", "")
	project := testutil.CreateProject(t, db, "Site", "General", 1)
	phase := testutil.CreatePhase(t, db, project.ProjectID, "Build", 1, "Draft")
	taskID := phase.Tasks[0].TaskID

	_, err := services.AssignUser(db, project.ProjectID, phase.PhaseID, taskID, user.UserID)
	require.NoError(t, err)

	task, err := services.GetTask(db, project.ProjectID, phase.PhaseID, taskID)
	require.NoError(t, err)
	require.Len(t, task.Assignments, 1)
	require.NotNil(t, task.Assignments[0].User)
	assert.Equal(t, "rae@example.com", task.Assignments[0].User.Email)

	require.NoError(t, services.DeleteTask(db, project.ProjectID, phase.PhaseID, taskID))
	assert.Zero(t, testutil.Count(t, db, &models.Task{}))
	assert.Zero(t, testutil.Count(t, db, &models.TaskAssignment{}))

	_, err = services.GetTask(db, project.ProjectID, phase.PhaseID, taskID)
	assert.True(t, errors.Is(err, types.ErrNotFound))

	err = services.DeleteTask(db, project.ProjectID, phase.PhaseID, taskID)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestAssignments(t *testing.T) {
	db := testutil.NewTestDB(t)
	rae := testutil.CreateUser(t, db, "Rae", "rae@example.com", "")
	sam := testutil.CreateUser(t, db, "Sam", "sam@example.com", "")
	project := testutil.CreateProject(t, db, "Site", "General", 1)
	phase := testutil.CreatePhase(t, db, project.ProjectID, "Build", 1, "Draft")
	taskID := phase.Tasks[0].TaskID

	assignment, err := services.AssignUser(db, project.ProjectID, phase.PhaseID, taskID, rae.UserID)
	require.NoError(t, err)
	assert.Equal(t, rae.UserID, assignment.UserID)
	require.NotNil(t, assignment.User)
	assert.Equal(t, "Rae", assignment.User.Name)
	assert.False(t, assignment.AssignedAt.IsZero())

	_, err = services.AssignUser(db, project.ProjectID, phase.PhaseID, taskID, sam.UserID)
	require.NoError(t, err, "a task may have several assignees")

	_, err = services.AssignUser(db, project.ProjectID, phase.PhaseID, taskID, rae.UserID)
	assert.True(t, errors.Is(err, types.ErrDuplicate))
	assert.EqualValues(t, 2, testutil.Count(t, db, &models.TaskAssignment{}))

	_, err = services.AssignUser(db, project.ProjectID, phase.PhaseID, taskID, 0)
	assert.True(t, types.IsKind(err, types.KindValidation))

	_, err = services.AssignUser(db, project.ProjectID, phase.PhaseID, taskID, 999)
	assert.True(t, errors.Is(err, types.ErrNotFound))

	require.NoError(t, services.UnassignUser(db, project.ProjectID, phase.PhaseID, taskID, rae.UserID))
	assert.EqualValues(t, 1, testutil.Count(t, db, &models.TaskAssignment{}))

	err = services.UnassignUser(db, project.ProjectID, phase.PhaseID, taskID, rae.UserID)
	assert.True(t, errors.Is(err, types.ErrNotFound))
}

func TestCreateTaskWithAssignees(t *testing.T) {
	db := testutil.NewTestDB(t)
	rae := testutil.CreateUser(t, db, "Rae", "rae@example.com", "")
	sam := testutil.CreateUser(t, db, "Sam", "sam@example.com", "")
	project := testutil.CreateProject(t, db, "Site", "General", 1)
	phase := testutil.CreatePhase(t, db, project.ProjectID, "Build", 1)

	task, err := services.CreateTask(db, project.ProjectID, phase.PhaseID, services.TaskInput{
		TaskDescription: "Review layout",
		Assignees:       []uint64{rae.UserID, sam.UserID, rae.UserID, 0},
	})
	require.NoError(t, err)
	require.Len(t, task.Assignments, 2, "repeated and zero ids are dropped")
	assert.Equal(t, rae.UserID, task.Assignments[0].UserID)
	require.NotNil(t, task.Assignments[0].User)
	assert.Equal(t, "Rae", task.Assignments[0].User.Name)
	assert.Equal(t, sam.UserID, task.Assignments[1].UserID)
	assert.EqualValues(t, 2, testutil.Count(t, db, &models.TaskAssignment{}))

	_, err = services.CreateTask(db, project.ProjectID, phase.PhaseID, services.TaskInput{
		TaskDescription: "Nobody home",
		Assignees:       []uint64{rae.UserID, 999},
	})
	assert.True(t, errors.Is(err, types.ErrNotFound))
	assert.EqualValues(t, 1, testutil.Count(t, db, &models.Task{}), "an unknown assignee rolls back the task")
	assert.EqualValues(t, 2, testutil.Count(t, db, &models.TaskAssignment{}))
}
