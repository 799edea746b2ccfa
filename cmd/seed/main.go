// cmd/seed/main.go — seeds the three stores with departments, one demo HR
// employee (credential + directory pair) and a few attendance rows.
// Usage: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var departments = []struct {
	id   int
	name string
}{
	{1, "Human Resources"},
	{2, "Engineering"},
	{3, "Marketing"},
	{4, "Sales"},
	{5, "Finance"},
}

func main() {
	authDSN := dsnFromEnv("AUTH_DB_DSN", "host=localhost port=5432 user=auth_user dbname=auth_credentials_db sslmode=disable")
	userDSN := dsnFromEnv("USER_MANAGEMENT_DB_DSN", "host=localhost port=5432 user=user_management_user dbname=user_management_db sslmode=disable")
	attendanceDSN := dsnFromEnv("ATTENDANCE_DB_DSN", "host=localhost port=5432 user=attendance_user dbname=attendance_db sslmode=disable")

	email := "hr.admin@example.com"
	username := "hradmin"
	password := "password123"
	userKey := uuid.Must(uuid.NewV7()).String()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	ctx := context.Background()

	userDB := open(userDSN)
	for _, d := range departments {
		result := userDB.WithContext(ctx).Exec(`
			INSERT INTO departments (department_id, department_name, created_at)
			VALUES (?, ?, NOW())
			ON CONFLICT (department_id) DO UPDATE
			SET department_name = EXCLUDED.department_name
		`, d.id, d.name)
		if result.Error != nil {
			log.Fatalf("seed department %q: %v", d.name, result.Error)
		}
	}

	result := userDB.WithContext(ctx).Exec(`
		INSERT INTO employees (user_key, username, email, department_id, first_name, last_name, hire_date, created_at, updated_at)
		VALUES (?, ?, ?, 1, 'HR', 'Admin', CURRENT_DATE, NOW(), NOW())
		ON CONFLICT (email) DO NOTHING
	`, userKey, username, email)
	if result.Error != nil {
		log.Fatalf("seed employee: %v", result.Error)
	}
	if result.RowsAffected == 0 {
		// Employee already seeded; reuse its user_key for the credential row.
		row := struct{ UserKey string }{}
		if err := userDB.WithContext(ctx).Raw(
			`SELECT user_key FROM employees WHERE email = ?`, email).Scan(&row).Error; err != nil {
			log.Fatalf("lookup seeded employee: %v", err)
		}
		userKey = row.UserKey
	}

	authDB := open(authDSN)
	result = authDB.WithContext(ctx).Exec(`
		INSERT INTO credentials (user_key, email, username, password_hash, created_at, updated_at)
		VALUES (?, ?, ?, ?, NOW(), NOW())
		ON CONFLICT (email) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    username = EXCLUDED.username
	`, userKey, email, username, string(hash))
	if result.Error != nil {
		log.Fatalf("seed credential: %v", result.Error)
	}

	attendanceDB := open(attendanceDSN)
	for _, day := range []struct {
		date, location, status string
	}{
		{"2025-06-02", "home", "present"},
		{"2025-06-03", "office", "present"},
		{"2025-06-04", "home", "late"},
	} {
		result = attendanceDB.WithContext(ctx).Exec(`
			INSERT INTO attendance_records (user_key, date, work_location, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, NOW(), NOW())
			ON CONFLICT (user_key, date) DO NOTHING
		`, userKey, day.date, day.location, day.status)
		if result.Error != nil {
			log.Fatalf("seed attendance %s: %v", day.date, result.Error)
		}
	}

	fmt.Printf("seeded HR user '%s' (user_key %s) with password '%s'\n", email, userKey, password)
}

func open(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db connect error: %v", err)
	}
	return db
}

func dsnFromEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
