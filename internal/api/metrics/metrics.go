// Package metrics defines and registers the console's custom Prometheus
// metrics. It is the single source of truth for metric names, labels, and
// help strings; HTTP-level metrics come from the echoprometheus middleware
// and are not duplicated here.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "console"

// LoginAttemptsTotal counts login attempts by outcome.
// Label:
//   - result: "success" or "failure"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// DirectoryMutationsTotal counts create/update/delete operations on the
// directory collections.
// Labels:
//   - entity: "user", "team", "client", "task"
//   - action: "create", "update", "delete"
var DirectoryMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "directory_mutations_total",
		Help:      "Total number of directory mutations, by entity and action.",
	},
	[]string{"entity", "action"},
)

// ReportRequestsTotal counts reporting view computations.
// Labels:
//   - view: "dashboard", "team_performance", "notifications"
//   - role: caller role
var ReportRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_requests_total",
		Help:      "Total number of reporting views computed, by view and caller role.",
	},
	[]string{"view", "role"},
)

// BriefingSuggestionsTotal counts calls to the AI collaborator.
// Label:
//   - result: "ok" or "fallback"
var BriefingSuggestionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "briefing_suggestions_total",
		Help:      "Total number of briefing suggestion requests, by result.",
	},
	[]string{"result"},
)

// FileUploadsTotal counts simulated file and contract uploads.
// Label:
//   - kind: "contract" or "attachment"
var FileUploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "file_uploads_total",
		Help:      "Total number of simulated uploads, by kind.",
	},
	[]string{"kind"},
)
