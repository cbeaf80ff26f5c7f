// routes.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/projectsdb/internal/config"
	"github.com/localnerve/projectsdb/internal/middleware"
	"github.com/localnerve/projectsdb/internal/models"
	"github.com/localnerve/projectsdb/internal/services"
	"gorm.io/gorm"
)

// Dependencies are the collaborators shared by the route handlers.
// AppDB is the elevated pool used for provisioning, seeding and user sync; UserDB serves
// ordinary reads and edits.
type Dependencies struct {
	Config *config.Config
	AppDB  *gorm.DB
	UserDB *gorm.DB
	Auth   middleware.AuthConfig
	Slack  *services.SlackNotifier
}

// RegisterRoutes mounts the API on router, which is normally the /api group
func RegisterRoutes(router fiber.Router, deps Dependencies) {
	projectHandler := &ProjectHandler{DB: deps.AppDB, Config: deps.Config}
	phaseHandler := &PhaseHandler{DB: deps.UserDB}
	taskHandler := &TaskHandler{DB: deps.UserDB}
	templateHandler := &TemplateHandler{DB: deps.AppDB}
	userHandler := &UserHandler{DB: deps.UserDB}
	authHandler := &AuthHandler{Auth: deps.Auth}
	reportHandler := &ReportHandler{DB: deps.UserDB}
	slackHandler := &SlackHandler{Notifier: deps.Slack}
	healthHandler := &HealthHandler{Config: deps.Config, DB: deps.AppDB}

	// Public routes
	router.Get("/health", healthHandler.Health)

	auth := router.Group("/auth")
	auth.Post("/signup", authHandler.SignUp)
	auth.Post("/signin", authHandler.SignIn)
	auth.Post("/signout", authHandler.SignOut)
	auth.Get("/session", authHandler.Session)

	// Everything else needs a signed-in user
	requireUser := middleware.RequireUser(deps.Auth)
	requireAdmin := middleware.RequireRole(deps.Auth.Disabled, models.RoleAdmin)

	router.Get("/templates", requireUser, templateHandler.ListTemplates)
	router.Post("/templates/seed", requireUser, requireAdmin, templateHandler.SeedTemplates)

	router.Get("/users", requireUser, userHandler.ListUsers)
	router.Get("/users/:userid", requireUser, userHandler.GetUser)
	router.Put("/users/:userid", requireUser, userHandler.UpdateProfile)
	router.Get("/users/:userid/tasks", requireUser, userHandler.ListUserTasks)

	projects := router.Group("/projects", requireUser)
	projects.Get("/", projectHandler.ListProjects)
	projects.Post("/", projectHandler.CreateProject)
	projects.Get("/cat/:category", projectHandler.ListProjectsByCategory)
	projects.Get("/:projectid", projectHandler.GetProject)
	projects.Get("/:projectid/progress", projectHandler.GetProjectProgress)
	projects.Get("/:projectid/report", reportHandler.GetProjectReport)

	projects.Post("/:projectid/phases", phaseHandler.CreatePhase)
	projects.Put("/:projectid/phases/:phaseid", phaseHandler.UpdatePhase)
	projects.Delete("/:projectid/phases/:phaseid", phaseHandler.DeletePhase)

	tasks := projects.Group("/:projectid/phases/:phaseid/tasks")
	tasks.Post("/", taskHandler.CreateTask)
	tasks.Get("/:taskid", taskHandler.GetTask)
	tasks.Put("/:taskid", taskHandler.UpdateTask)
	tasks.Delete("/:taskid", taskHandler.DeleteTask)
	tasks.Post("/:taskid/assign", taskHandler.AssignUser)
	tasks.Delete("/:taskid/assign", taskHandler.UnassignUser)

	router.Post("/generate-pdf", requireUser, reportHandler.GeneratePDF)

	slack := router.Group("/slack", requireUser)
	slack.Post("/send-message", slackHandler.SendMessage)
	slack.Post("/upload-file", slackHandler.UploadFile)
}
