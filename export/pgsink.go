// Optional Postgres mirror of the export table.  The mirror is rebuilt wholesale on every export,
// there is no incremental path; the CSV file remains the primary output.

package export

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
)

const observationsSchema = `
CREATE TABLE IF NOT EXISTS observations (
  timestamp BIGINT NOT NULL,
  platform  TEXT NOT NULL,
  account   TEXT NOT NULL,
  metric    TEXT NOT NULL,
  value     TEXT NOT NULL
)`

func mirrorTable(databaseURI string, rows []exportRow) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	conn, err := pgx.Connect(ctx, databaseURI)
	if err != nil {
		return fmt.Errorf("unable to connect to database: %w", err)
	}
	defer conn.Close(ctx)
	if _, err := conn.Exec(ctx, observationsSchema); err != nil {
		return err
	}
	if _, err := conn.Exec(ctx, "TRUNCATE observations"); err != nil {
		return err
	}
	source := make([][]any, len(rows))
	for i, r := range rows {
		source[i] = []any{r.epoch, r.id.Platform, r.id.Account, r.id.Metric, r.value}
	}
	_, err = conn.CopyFrom(ctx,
		pgx.Identifier{"observations"},
		[]string{"timestamp", "platform", "account", "metric", "value"},
		pgx.CopyFromRows(source))
	return err
}
