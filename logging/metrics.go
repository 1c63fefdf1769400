package logging

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics counts what a Logger emits. A nil *Metrics records nothing.
type Metrics struct {
	records  *prometheus.CounterVec
	hexBytes prometheus.Counter
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Records      map[Level]float64
	HexDumpBytes float64
}

// NewMetrics creates the counters and registers them on reg. A nil reg
// leaves them unregistered. Registering twice on the same registry reuses
// the collectors already there.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		records: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "xgxmeta",
				Name:      "log_records_total",
				Help:      "Total number of log records written, by level",
			},
			[]string{"level"},
		),
		hexBytes: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "xgxmeta",
				Name:      "hexdump_bytes_total",
				Help:      "Total number of bytes rendered by hex dumps",
			},
		),
	}
	if reg == nil {
		return m, nil
	}

	var are prometheus.AlreadyRegisteredError
	if err := reg.Register(m.records); err != nil {
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return nil, err
		}
		m.records = existing
	}
	if err := reg.Register(m.hexBytes); err != nil {
		if !errors.As(err, &are) {
			return nil, err
		}
		existing, ok := are.ExistingCollector.(prometheus.Counter)
		if !ok {
			return nil, err
		}
		m.hexBytes = existing
	}
	return m, nil
}

func (m *Metrics) observeRecord(level Level) {
	if m == nil {
		return
	}
	m.records.WithLabelValues(level.String()).Inc()
}

func (m *Metrics) observeHex(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.hexBytes.Add(float64(n))
}

// Snapshot reads the current counter values.
func (m *Metrics) Snapshot() (MetricsSnapshot, error) {
	snap := MetricsSnapshot{Records: make(map[Level]float64, int(LevelOff))}
	if m == nil {
		return snap, nil
	}
	for lv := LevelDebug; lv < LevelOff; lv++ {
		v, err := counterValue(m.records.WithLabelValues(lv.String()))
		if err != nil {
			return MetricsSnapshot{}, err
		}
		if v > 0 {
			snap.Records[lv] = v
		}
	}
	v, err := counterValue(m.hexBytes)
	if err != nil {
		return MetricsSnapshot{}, err
	}
	snap.HexDumpBytes = v
	return snap, nil
}

func counterValue(c prometheus.Counter) (float64, error) {
	var pb dto.Metric
	if err := c.Write(&pb); err != nil {
		return 0, err
	}
	return pb.GetCounter().GetValue(), nil
}
