package metrics

import (
	"database/sql"
	"time"
)

// CollectDBStats периодически снимает статистику connection pool
// и публикует ее в gauges. Останавливается по закрытию stopCh.
func (m *Metrics) CollectDBStats(db *sql.DB, interval time.Duration, stopCh <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				stats := db.Stats()
				m.DBOpenConnections.Set(float64(stats.OpenConnections))
				m.DBInUseConnections.Set(float64(stats.InUse))
				m.DBIdleConnections.Set(float64(stats.Idle))
			case <-stopCh:
				return
			}
		}
	}()
}
