package booking

import "github.com/detailhub/booking-service/pkg/dbmetrics"

// Database interfaces come from dbmetrics so the repository works both with
// a bare *sql.DB and the metrics-wrapped pool.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
