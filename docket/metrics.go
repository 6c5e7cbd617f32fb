package docket

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/linesmerrill/court-docket-api/models"
)

var mutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "court",
		Name:      "docket_mutations_total",
		Help:      "Docket mutations by operation and outcome category.",
	},
	[]string{"operation", "outcome"},
)

func recordMutation(op string, err error) {
	outcome := "ok"
	var domainErr *models.Error
	if errors.As(err, &domainErr) {
		outcome = string(domainErr.Category)
	} else if err != nil {
		outcome = string(models.CategoryInternalFault)
	}
	mutationsTotal.WithLabelValues(op, outcome).Inc()
}
