package lunar

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/roach88/saju/internal/ganzhi"
)

//go:embed schema.sql
var schemaSQL string

// SQLite reads lunar dates from a prepared table file. The table is an
// opaque data source: the provider never computes, only looks up, so its
// answers are exactly as good as the seed that produced them.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite creates or opens a lunar table database at the given path and
// applies the schema. Idempotent.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open lunar table: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to lunar table: %w", err)
	}

	// Single writer avoids SQLITE_BUSY during seeding; reads are cheap.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to apply pragma %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

// Close closes the database.
func (s *SQLite) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// FromSolar implements Provider by locating the month row covering the
// solar date's JDN. Dates outside the seeded span fail with ErrNotCovered.
func (s *SQLite) FromSolar(year, month, day int) (Date, error) {
	jdn := ganzhi.JDN(year, month, day)

	row := s.db.QueryRow(`
		SELECT start_jdn, lunar_year, lunar_month, leap, length
		FROM lunar_months
		WHERE start_jdn <= ?
		ORDER BY start_jdn DESC
		LIMIT 1`, jdn)

	var start, ly, lm, leap, length int
	if err := row.Scan(&start, &ly, &lm, &leap, &length); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Date{}, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrNotCovered)
		}
		return Date{}, fmt.Errorf("lunar table query: %w", err)
	}
	if jdn >= start+length {
		// Past the last seeded month.
		return Date{}, fmt.Errorf("%04d-%02d-%02d: %w", year, month, day, ErrNotCovered)
	}

	return Date{
		Year:  ly,
		Month: lm,
		Day:   jdn - start + 1,
		Leap:  leap == 1,
	}, nil
}

// Seed materializes month rows for the civil years [fromYear, toYear] from
// a source provider, typically Astronomical. Existing rows in the span are
// replaced; the write is transactional.
func (s *SQLite) Seed(source Provider, fromYear, toYear int) error {
	if fromYear > toYear {
		return fmt.Errorf("invalid seed span %d..%d", fromYear, toYear)
	}

	// Scan civil days, opening a new row whenever a month's first day
	// appears. Start a little early so the month covering January 1 of
	// fromYear is complete.
	startJDN := ganzhi.JDN(fromYear-1, 12, 1)
	endJDN := ganzhi.JDN(toYear+1, 1, 31)

	type monthRow struct {
		start, year, month, leap int
	}
	var rows []monthRow

	for jdn := startJDN; jdn <= endJDN; jdn++ {
		y, m, d := ganzhi.DateFromJDN(jdn)
		ld, err := source.FromSolar(y, m, d)
		if err != nil {
			return fmt.Errorf("seed source at %04d-%02d-%02d: %w", y, m, d, err)
		}
		if ld.Day != 1 {
			continue
		}
		leap := 0
		if ld.Leap {
			leap = 1
		}
		rows = append(rows, monthRow{start: jdn, year: ld.Year, month: ld.Month, leap: leap})
	}
	if len(rows) < 2 {
		return fmt.Errorf("seed span %d..%d produced no complete months", fromYear, toYear)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("seed transaction: %w", err)
	}
	defer tx.Rollback()

	// The last scanned row has no successor to derive a length from.
	for i := 0; i < len(rows)-1; i++ {
		r := rows[i]
		length := rows[i+1].start - r.start
		if _, err := tx.Exec(`
			INSERT OR REPLACE INTO lunar_months
				(start_jdn, lunar_year, lunar_month, leap, length)
			VALUES (?, ?, ?, ?, ?)`,
			r.start, r.year, r.month, r.leap, length); err != nil {
			return fmt.Errorf("seed insert: %w", err)
		}
	}
	if _, err := tx.Exec(`
		INSERT INTO seed_info (from_year, to_year, seeded_at)
		VALUES (?, ?, ?)`,
		fromYear, toYear, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("seed info insert: %w", err)
	}

	return tx.Commit()
}
