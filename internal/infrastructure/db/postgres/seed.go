package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/casedesk/casedesk/internal/core/domain"
)

// Seed loads the sample data set: two users (admin/admin123,
// user/user123), five cases, ten customers, seven investigations and nine
// targets. It is a no-op when any user already exists, and runs in a single
// transaction so a failure leaves the database untouched.
func Seed(ctx context.Context, db *sql.DB, log zerolog.Logger) error {
	var userCount int64
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return fmt.Errorf("seed: count users: %w", err)
	}
	if userCount > 0 {
		log.Info().Msg("database already contains users, skipping seed")
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin: %w", err)
	}
	defer tx.Rollback()

	for _, u := range []struct{ username, email, password, role string }{
		{"admin", "admin@example.com", "admin123", domain.RoleAdmin},
		{"user", "user@example.com", "user123", domain.RoleGeneral},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("seed: hash password: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO users (username, email, password_hash, role)
			VALUES ($1, $2, $3, $4)`,
			u.username, u.email, string(hash), u.role,
		); err != nil {
			return fmt.Errorf("seed: insert user %s: %w", u.username, err)
		}
	}

	cases := []struct{ name, description, status string }{
		{"Unauthorized Access Investigation", "Investigation of unauthorized access to internal systems", "open"},
		{"Data Breach Investigation", "Investigation of a leak of customer data", "in_progress"},
		{"Insider Misconduct Investigation", "Investigation of possible misconduct by an employee", "open"},
		{"Security Audit", "Audit of the current security posture", "closed"},
		{"Compliance Review", "Review of a possible compliance violation", "on_hold"},
	}
	caseIDs := make([]int64, len(cases))
	for i, c := range cases {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO cases (name, description, status)
			VALUES ($1, $2, $3) RETURNING id`,
			c.name, c.description, c.status,
		).Scan(&caseIDs[i]); err != nil {
			return fmt.Errorf("seed: insert case %q: %w", c.name, err)
		}
	}

	customers := []struct{ name, email, phone, address string }{
		{"Tanaka Corp", "contact@tanaka.example.com", "03-1234-5001", "1-2-3 Marunouchi, Chiyoda, Tokyo"},
		{"Suzuki Trading", "contact@suzuki.example.com", "03-1234-5002", "2-4-6 Marunouchi, Chiyoda, Tokyo"},
		{"Sato Industries", "contact@sato.example.com", "03-1234-5003", "3-6-9 Marunouchi, Chiyoda, Tokyo"},
		{"Takahashi Electric", "contact@takahashi.example.com", "03-1234-5004", "1-8-2 Otemachi, Chiyoda, Tokyo"},
		{"Ito Logistics", "contact@ito.example.com", "03-1234-5005", "2-1-7 Otemachi, Chiyoda, Tokyo"},
		{"Watanabe Construction", "contact@watanabe.example.com", "03-1234-5006", "4-3-1 Kanda, Chiyoda, Tokyo"},
		{"Yamamoto Manufacturing", "contact@yamamoto.example.com", "03-1234-5007", "5-2-8 Kanda, Chiyoda, Tokyo"},
		{"Nakamura Retail", "contact@nakamura.example.com", "03-1234-5008", "1-9-4 Nihonbashi, Chuo, Tokyo"},
		{"Kobayashi Transport", "contact@kobayashi.example.com", "03-1234-5009", "2-5-6 Nihonbashi, Chuo, Tokyo"},
		{"Kato Engineering", "contact@kato.example.com", "03-1234-5010", "3-7-2 Ginza, Chuo, Tokyo"},
	}
	for i, c := range customers {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO customers (case_id, name, email, phone, address)
			VALUES ($1, $2, $3, $4, $5)`,
			caseIDs[i%len(caseIDs)], c.name, c.email, c.phone, c.address,
		); err != nil {
			return fmt.Errorf("seed: insert customer %q: %w", c.name, err)
		}
	}

	investigations := []struct{ title, description string }{
		{"System Log Analysis", "Analysis of system logs for traces of unauthorized access"},
		{"Network Traffic Analysis", "Analysis of network traffic for anomalous communication"},
		{"Endpoint Forensics", "Forensic examination of the affected endpoints"},
		{"Mail Data Review", "Review of mail data for traces of information leakage"},
		{"Access Permission Review", "Review of system access permissions"},
		{"Backup Data Review", "Review of backup data for signs of tampering"},
		{"Cloud Usage Review", "Review of cloud service usage"},
	}
	investigationIDs := make([]int64, len(investigations))
	for i, v := range investigations {
		if err := tx.QueryRowContext(ctx, `
			INSERT INTO investigations (case_id, title, description, status, start_date)
			VALUES ($1, $2, $3, $4, NOW() - make_interval(days => $5)) RETURNING id`,
			caseIDs[i%len(caseIDs)], v.title, v.description, "open", 30+i*7,
		).Scan(&investigationIDs[i]); err != nil {
			return fmt.Errorf("seed: insert investigation %q: %w", v.title, err)
		}
	}

	targets := []struct{ name, typ, details string }{
		{"Web Server", "server", "Web server running Apache 2.4.41"},
		{"Database Server", "server", "Database server running PostgreSQL 12.4"},
		{"Employee PC", "pc", "Employee workstation running Windows 10"},
		{"File Server", "server", "File server running Samba 4.11.6"},
		{"Mail Server", "server", "Mail server running Exchange 2019"},
		{"Cloud Storage", "cloud", "Cloud storage backed by AWS S3"},
		{"Backup Server", "server", "Backup server running Bacula 9.4.2"},
		{"Core Switch", "network", "Cisco Catalyst 3850 switch"},
		{"Mobile Device", "mobile", "iPhone running iOS 14.4"},
	}
	for i, t := range targets {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO targets (investigation_id, name, type, details, status)
			VALUES ($1, $2, $3, $4, $5)`,
			investigationIDs[i%len(investigationIDs)], t.name, t.typ, t.details, "open",
		); err != nil {
			return fmt.Errorf("seed: insert target %q: %w", t.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit: %w", err)
	}
	log.Info().
		Int("cases", len(cases)).
		Int("customers", len(customers)).
		Int("investigations", len(investigations)).
		Int("targets", len(targets)).
		Msg("database seeded with sample data")
	return nil
}
