package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var tableNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// OpenMySQL opens a CRM database connection. mariadb:// and mysql:// URLs are
// normalized to the driver's DSN format.
func OpenMySQL(dsn string) (*sql.DB, error) {
	mysqlDSN, err := toMySQLDSN(dsn)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, nil
}

func toMySQLDSN(dsn string) (string, error) {
	if strings.HasPrefix(dsn, "mariadb://") || strings.HasPrefix(dsn, "mysql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("parse dsn: %w", err)
		}
		user := ""
		pass := ""
		if u.User != nil {
			user = u.User.Username()
			pw, _ := u.User.Password()
			pass = pw
		}
		host := u.Host
		db := strings.TrimPrefix(u.Path, "/")
		if user == "" || host == "" || db == "" {
			return "", fmt.Errorf("dsn missing user, host, or database")
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&interpolateParams=true",
			user, pass, host, db), nil
	}
	return dsn, nil
}

// LoadMySQL selects the schema's columns from a database table. NULL cells
// carry over as table nulls, so the usual RequireComplete check applies
// before clustering.
func LoadMySQL(ctx context.Context, db *sql.DB, tableName string, schema Schema) (*Table, error) {
	if !tableNameRe.MatchString(tableName) {
		return nil, fmt.Errorf("invalid table name %q", tableName)
	}
	names := make([]string, len(schema))
	for i, def := range schema {
		if !tableNameRe.MatchString(def.Name) {
			return nil, fmt.Errorf("invalid column name %q", def.Name)
		}
		names[i] = def.Name
	}

	q := fmt.Sprintf("SELECT %s FROM %s", strings.Join(names, ", "), tableName)
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", tableName, err)
	}
	defer rows.Close()

	var records [][]sql.NullString
	dest := make([]any, len(schema))
	for rows.Next() {
		holders := make([]sql.NullString, len(schema))
		for i := range holders {
			dest[i] = &holders[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", tableName, err)
		}
		records = append(records, holders)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", tableName, err)
	}

	t := NewTable(schema, len(records))
	for row, rec := range records {
		for i, def := range schema {
			// SQL NULL and '' are distinct: only the former becomes a
			// table null.
			if !rec[i].Valid {
				t.setNull(def.Name, row)
				continue
			}
			if err := t.setValue(def.Name, row, strings.TrimSpace(rec[i].String)); err != nil {
				return nil, err
			}
		}
	}
	return t, nil
}
