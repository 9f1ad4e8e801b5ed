package database

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"

	"day-zero/pkg/models"

	"github.com/go-sql-driver/mysql"
	"github.com/sirupsen/logrus"
)

var tableNameRe = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Open connects to MySQL/MariaDB. URL-style DSNs (mysql://, mariadb://) are
// converted to the driver's native form; the converted DSN is returned too.
func Open(dsn string) (*sql.DB, string, error) {
	mysqlDSN, err := toMySQLDSN(dsn)
	if err != nil {
		return nil, "", err
	}
	db, err := sql.Open("mysql", mysqlDSN)
	if err != nil {
		return nil, "", err
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)
	return db, mysqlDSN, nil
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
			pass, _ = u.User.Password()
		}
		host := u.Host
		db := strings.TrimPrefix(u.Path, "/")
		if user == "" || host == "" || db == "" {
			return "", fmt.Errorf("incomplete dsn (user/host/db)")
		}
		return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&interpolateParams=true",
			user, pass, host, db), nil
	}
	if _, err := mysql.ParseDSN(dsn); err != nil {
		return "", fmt.Errorf("parse dsn: %w", err)
	}
	return dsn, nil
}

func selectQuery(table string) (string, error) {
	if !tableNameRe.MatchString(table) {
		return "", fmt.Errorf("invalid table name %q", table)
	}
	return fmt.Sprintf(`
		SELECT DateRep, CountryExp, NewConfCases, NewDeaths, population
		FROM %s
	`, table), nil
}

// LoadCaseReports reads every row of table. Rows come back in storage
// order; realignment sorts them.
func LoadCaseReports(ctx context.Context, db *sql.DB, table string, log logrus.FieldLogger) ([]models.CaseReport, error) {
	q, err := selectQuery(table)
	if err != nil {
		return nil, err
	}
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		out           []models.CaseReport
		nullPopulated int
	)
	for rows.Next() {
		var (
			r          models.CaseReport
			population sql.NullFloat64
		)
		if err := rows.Scan(&r.DateRep, &r.Country, &r.NewConfCases, &r.NewDeaths, &population); err != nil {
			return nil, err
		}
		r.Population = math.NaN()
		if population.Valid {
			r.Population = population.Float64
		} else {
			nullPopulated++
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if log != nil {
		log.WithFields(logrus.Fields{
			"table":           table,
			"rows":            len(out),
			"null_population": nullPopulated,
		}).Debug("Loaded case reports from database")
	}
	return out, nil
}

// Table is a calculator.Source backed by a MySQL table.
type Table struct {
	DB   *sql.DB
	Name string
	Log  logrus.FieldLogger
}

func (t Table) Load(ctx context.Context) ([]models.CaseReport, error) {
	return LoadCaseReports(ctx, t.DB, t.Name, t.Log)
}
