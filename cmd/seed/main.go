// main.go
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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/localnerve/projectsdb/data"
	"github.com/localnerve/projectsdb/internal/config"
	"github.com/localnerve/projectsdb/internal/database"
	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/localnerve/projectsdb/internal/services"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var catalogFilename string
	flag.StringVar(&catalogFilename, "f", "", "path to a template catalog yaml file")
	var migrate bool
	flag.BoolVar(&migrate, "migrate", true, "run schema migrations before seeding")
	flag.Parse()

	usage := `
Seed the project template catalog into the projectsdb app database.

Usage:

seed [-h] [-migrate=false] [-f CATALOG_PATH]

CATALOG_PATH: yaml catalog to load instead of the built-in one

example
  seed -f ./my-templates.yaml
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	log := logutils.Log

	catalog, err := loadCatalog(catalogFilename)
	if err != nil {
		log.Fatalf("Failed to load template catalog: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if migrate {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	result, err := services.SeedTemplates(db, catalog)
	if err != nil {
		log.Fatalf("Failed to seed templates: %v", err)
	}

	log.WithFields(logutils.Fields{
		"created": result.Created,
		"updated": result.Updated,
	}).Info("Template catalog seeded")
}

func loadCatalog(filename string) (*data.Catalog, error) {
	if filename == "" {
		return data.DefaultCatalog()
	}

	raw, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return data.ParseCatalog(raw)
}
