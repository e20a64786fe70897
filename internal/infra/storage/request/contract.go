package request

import "github.com/m04kA/SMC-RoomBooking/pkg/txmanager"

// DBExecutor *sql.DB или *sql.Tx
type DBExecutor = txmanager.DBExecutor
