// metrics.go
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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	projectsProvisioned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "projectsdb",
		Name:      "projects_provisioned_total",
		Help:      "Projects created through template provisioning.",
	})
	phasesProvisioned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "projectsdb",
		Name:      "phases_provisioned_total",
		Help:      "Project phases cloned from template phases.",
	})
	tasksProvisioned = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "projectsdb",
		Name:      "tasks_provisioned_total",
		Help:      "Project tasks cloned from template tasks.",
	})
	provisioningFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "projectsdb",
		Name:      "provisioning_failures_total",
		Help:      "Provisioning requests rolled back after a persistence failure.",
	})
	slackDeliveries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "projectsdb",
		Name:      "slack_deliveries_total",
		Help:      "Slack webhook deliveries by team and outcome.",
	}, []string{"team", "outcome"})
)
