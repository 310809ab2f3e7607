package testutil

import (
	"database/sql"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration-test database. Expects a MySQL instance
// on localhost:3306 with a database named 'shopdash_test'; tests are skipped
// when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/shopdash_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB empties the test tables and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	if _, err := db.Exec("DELETE FROM orders"); err != nil {
		t.Logf("failed to clean table orders: %v", err)
	}

	db.Close()
}

// SetupTestTables creates the schema the integration tests need.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS orders (
		id BIGINT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		external_id VARCHAR(64) NOT NULL,
		email VARCHAR(150) NOT NULL,
		total_price VARCHAR(32) NOT NULL,
		product VARCHAR(512) NOT NULL DEFAULT '',
		date VARCHAR(64) NOT NULL DEFAULT '',
		status VARCHAR(50) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY idx_external (external_id)
	)`

	if _, err := db.Exec(createOrdersTable); err != nil {
		t.Logf("failed to create table orders: %v", err)
	}
}
