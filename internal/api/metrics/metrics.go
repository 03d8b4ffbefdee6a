// Package metrics defines and registers all custom Prometheus metrics for the
// wunif site API. It is the single source of truth for metric names, labels,
// and help strings. All metrics register with the default registry at init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "wunif"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok" or "failed"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "ok", "rejected" (reserved/duplicate) or "failed"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of registration attempts, by result.",
	},
	[]string{"result"},
)

// ── Content metrics ───────────────────────────────────────────────────────────

// NewsPostsCreatedTotal counts published news posts.
var NewsPostsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "news_posts_created_total",
		Help:      "Total number of news posts created.",
	},
)

// CommentsCreatedTotal counts comments posted on news articles.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// ── Mailbox metrics ───────────────────────────────────────────────────────────

// ContactMessagesTotal counts accepted contact-form submissions.
var ContactMessagesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact messages received.",
	},
)

// ComplaintsReceivedTotal counts complaint/suggestion submissions.
// Label:
//   - kind: "queja" or "sugerencia"
var ComplaintsReceivedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_received_total",
		Help:      "Total number of complaints and suggestions received, by kind.",
	},
	[]string{"kind"},
)

// ComplaintsResolvedTotal counts entries resolved by an admin reply.
var ComplaintsResolvedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "complaints_resolved_total",
		Help:      "Total number of complaints and suggestions resolved.",
	},
)
