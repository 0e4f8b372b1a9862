// Package sqlite registers the SQLite driver used by footix.
package sqlite

import (
	"database/sql"

	"github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver registered by this package.
const DriverName = "sqlite3_footix"

var pragmas = []string{
	"PRAGMA foreign_keys = ON",
	"PRAGMA busy_timeout = 5000",
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
}

func init() {
	sql.Register(DriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			for _, p := range pragmas {
				if _, err := conn.Exec(p, nil); err != nil {
					return err
				}
			}
			return nil
		},
	})
}
