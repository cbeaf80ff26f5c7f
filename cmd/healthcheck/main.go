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
	"time"

	"github.com/imroc/req/v3"
	"github.com/localnerve/projectsdb/internal/logutils"
	"github.com/localnerve/projectsdb/internal/services"
)

// healthcheck is the container probe. It asks the running server for its health report,
// prints it, and exits non-zero unless the server reports healthy.
func main() {
	log := logutils.Log

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	target := flag.String("url", "http://127.0.0.1:"+port+"/api/health", "health endpoint")
	timeout := flag.Duration("timeout", 4*time.Second, "request timeout")
	flag.Parse()

	var result services.HealthCheckResult
	resp, err := req.C().
		SetTimeout(*timeout).
		R().
		SetSuccessResult(&result).
		SetErrorResult(&result).
		Get(*target)
	if err != nil {
		log.WithError(err).WithField("url", *target).Error("Health request failed")
		os.Exit(1)
	}

	fmt.Println(resp.String())

	if resp.StatusCode != 200 || result.Status != "healthy" {
		log.WithFields(logutils.Fields{
			"status": resp.StatusCode,
			"error":  result.ErrorMessage,
		}).Error("Service is unhealthy")
		os.Exit(1)
	}
}
