package externee

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recordsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tadipaar_externment_records_created_total",
		Help: "Externment records created",
	})
	recordsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "tadipaar_externment_records_deleted_total",
		Help: "Externment records deleted",
	})
)
