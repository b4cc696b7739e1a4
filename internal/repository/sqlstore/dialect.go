package sqlstore

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"realestate/internal/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect selects placeholder style and DDL for a store
type Dialect int

const (
	// DialectSQLite uses ? placeholders and AUTOINCREMENT keys
	DialectSQLite Dialect = iota
	// DialectPostgres uses $n placeholders and BIGSERIAL keys
	DialectPostgres
)

func (d Dialect) String() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// Rebind rewrites ? placeholders into the dialect's form. Queries in this
// package never contain a literal question mark.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// DialectFor maps a configured driver name to the registered database/sql
// driver and its dialect.
//
//	sqlite, sqlite3 -> modernc.org/sqlite ("sqlite")
//	pgx             -> github.com/jackc/pgx/v5/stdlib ("pgx")
//	postgres, pq    -> github.com/lib/pq ("postgres")
func DialectFor(driver string) (string, Dialect, error) {
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		return "sqlite", DialectSQLite, nil
	case "pgx":
		return "pgx", DialectPostgres, nil
	case "postgres", "pq":
		return "postgres", DialectPostgres, nil
	default:
		return "", 0, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// dataSourceName builds the DSN handed to sql.Open. SQLite files get WAL and
// a busy timeout; postgres DSNs get the configured credentials.
func dataSourceName(cfg config.DatabaseConfig, d Dialect) (string, error) {
	dsn := cfg.DSN
	if dsn == "" {
		return "", fmt.Errorf("database dsn is required")
	}

	if d == DialectSQLite {
		if isMemory(dsn) || strings.Contains(dsn, "_pragma=") {
			return dsn, nil
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", nil
	}

	if cfg.User == "" {
		return dsn, nil
	}

	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse database url: %w", err)
		}
		if cfg.Password != "" {
			u.User = url.UserPassword(cfg.User, cfg.Password)
		} else {
			u.User = url.User(cfg.User)
		}
		return u.String(), nil
	}

	// keyword/value form
	dsn += " user=" + quoteKeyword(cfg.User)
	if cfg.Password != "" {
		dsn += " password=" + quoteKeyword(cfg.Password)
	}
	return dsn, nil
}

func quoteKeyword(v string) string {
	if v != "" && !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.Contains(dsn, "mode=memory")
}
