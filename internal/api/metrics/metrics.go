// Package metrics defines and registers all custom Prometheus metrics for the
// catalog API. It is the single source of truth for metric names, labels, and
// help strings. Metrics register with the default registry at import time via
// promauto; the /metrics endpoint is wired in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "catalog"

// ── Idempotency metrics ───────────────────────────────────────────────────────

// IdempotencyAdmissionsTotal counts idempotency keys admitted to the ledger.
var IdempotencyAdmissionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_admissions_total",
		Help:      "Total number of idempotency keys admitted to the ledger.",
	},
)

// IdempotencyRejectionsTotal counts rejected admissions.
// Label:
//   - reason: "reused" (duplicate (key, owner) pair) or "invalid" (blank/oversized key)
var IdempotencyRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_rejections_total",
		Help:      "Total number of rejected idempotency admissions, by reason.",
	},
	[]string{"reason"},
)

// IdempotencyCacheTotal counts fast-path cache decisions.
// Label:
//   - result: "hit" (known duplicate, store skipped) or "miss"
var IdempotencyCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "idempotency_cache_total",
		Help:      "Total number of seen-key cache checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductsCreatedTotal counts successfully created products.
var ProductsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_created_total",
		Help:      "Total number of products created.",
	},
)

// PriceChangesTotal counts successful price changes.
var PriceChangesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "price_changes_total",
		Help:      "Total number of product price changes.",
	},
)

// ProductsDeletedTotal counts deleted products.
var ProductsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "products_deleted_total",
		Help:      "Total number of products deleted.",
	},
)

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts token issuance attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of token issuance attempts, by result.",
	},
	[]string{"result"},
)
