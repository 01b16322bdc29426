package validate

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hedisam/ledgercheck/internal/custompromauto"
)

const (
	kindTransaction = "transaction"
	kindBlock       = "block"
	kindChain       = "chain"
)

var (
	validations = custompromauto.Auto().NewCounterVec(prometheus.CounterOpts{
		Name: "ledgercheck_validations_total",
		Help: "Total number of validation requests by kind and result",
	}, []string{"kind", "result"})

	checkedBlocks = custompromauto.Auto().NewCounter(prometheus.CounterOpts{
		Name: "ledgercheck_checked_blocks_total",
		Help: "Total number of blocks whose transactions and hash were checked",
	})
)
