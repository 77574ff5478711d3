package model

import (
	"errors"

	prom "github.com/prometheus/client_golang/prometheus"
)

const (
	resultHit  = "hit"
	resultMiss = "miss"
	resultOK   = "ok"
)

// modelMetrics counts model operations by operation and result.
type modelMetrics struct {
	operations *prom.CounterVec
}

func newModelMetrics(reg prom.Registerer) *modelMetrics {
	if reg == nil {
		return nil
	}
	operations := prom.NewCounterVec(
		prom.CounterOpts{
			Name: "recordstore_model_operations_total",
			Help: "Total number of model operations, partitioned by operation and result.",
		}, []string{"operation", "result"})
	if err := reg.Register(operations); err != nil {
		var are prom.AlreadyRegisteredError
		if !errors.As(err, &are) {
			panic(err)
		}
		operations = are.ExistingCollector.(*prom.CounterVec)
	}
	return &modelMetrics{operations: operations}
}

func (m *modelMetrics) observe(operation, result string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.operations.WithLabelValues(operation, result).Add(float64(n))
}

func lookupResult(found bool) string {
	if found {
		return resultHit
	}
	return resultMiss
}
