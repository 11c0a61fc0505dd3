// Package metrics defines and registers all custom Prometheus metrics for
// the payments platform. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at package load;
// the /metrics endpoint exposed by the routers serves them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "payments"

// ── Ledger metrics ────────────────────────────────────────────────────────────

// LedgerOperationsTotal counts ledger mutations that committed successfully.
// Label:
//   - direction: "deposit" or "withdraw"
var LedgerOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_operations_total",
		Help:      "Total number of ledger mutations successfully applied.",
	},
	[]string{"direction"},
)

// LedgerErrorsTotal counts ledger mutations that were rejected or failed.
// Label:
//   - reason: short description of the failure (e.g. "invalid_amount", "insufficient_funds", "account_not_found", "write_failed")
var LedgerErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_errors_total",
		Help:      "Total number of ledger mutations that failed.",
	},
	[]string{"reason"},
)

// LedgerReplaysTotal counts idempotency decisions on ledger mutations.
// Label:
//   - result: "hit" (replay, skipped) or "miss" (new mutation, applied)
var LedgerReplaysTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ledger_replays_total",
		Help:      "Total number of idempotency checks on ledger mutations, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// LedgerOperationDuration measures how long a single ledger mutation takes
// from validation to commit.
// Label:
//   - direction: "deposit" or "withdraw"
var LedgerOperationDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "ledger_operation_duration_seconds",
		Help:      "Duration of a ledger mutation from validation to commit.",
		Buckets:   prometheus.DefBuckets, // .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10
	},
	[]string{"direction"},
)

// ── Account metrics ───────────────────────────────────────────────────────────

// AccountsCreatedTotal counts newly created accounts.
var AccountsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_created_total",
		Help:      "Total number of accounts created.",
	},
)

// ── Template metrics ──────────────────────────────────────────────────────────

// TemplateOperationsTotal counts template store mutations.
// Label:
//   - operation: "create", "update", or "delete"
var TemplateOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "template_operations_total",
		Help:      "Total number of template mutations, by operation.",
	},
	[]string{"operation"},
)
