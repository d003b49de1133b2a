package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the test database. Expects a MySQL instance on
// localhost:3306 with a database named 'posterworks_test'; tests skip when
// it is unavailable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/posterworks_test?parseTime=true"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{"order_items", "orders", "product_skus"}
	for _, table := range tables {
		if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

func SetupTestTables(t *testing.T, db *sql.DB) {
	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS orders (
		order_id VARCHAR(64) NOT NULL PRIMARY KEY,
		client_id VARCHAR(64) NOT NULL DEFAULT '',
		job_id VARCHAR(64) NOT NULL DEFAULT '',
		email VARCHAR(150) NOT NULL DEFAULT '',
		ship_name VARCHAR(150) NOT NULL DEFAULT '',
		ship_line1 VARCHAR(255) NOT NULL DEFAULT '',
		ship_line2 VARCHAR(255) NOT NULL DEFAULT '',
		ship_city VARCHAR(100) NOT NULL DEFAULT '',
		ship_state VARCHAR(100) NOT NULL DEFAULT '',
		ship_postal_code VARCHAR(30) NOT NULL DEFAULT '',
		ship_country VARCHAR(2) NOT NULL DEFAULT '',
		shipping_method VARCHAR(20) NOT NULL DEFAULT '',
		total_amount BIGINT NOT NULL DEFAULT 0,
		amount_paid BIGINT NOT NULL DEFAULT 0,
		status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
		shipping_status VARCHAR(50) NOT NULL DEFAULT '',
		payment_intent_id VARCHAR(100) NOT NULL DEFAULT '',
		fulfillment_order_id VARCHAR(100) NOT NULL DEFAULT '',
		error_message TEXT,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		expires_at DATETIME NOT NULL,
		INDEX idx_client (client_id),
		INDEX idx_status_expiry (status, expires_at)
	)`

	createOrderItemsTable := `
	CREATE TABLE IF NOT EXISTS order_items (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL,
		name VARCHAR(255) NOT NULL,
		unit_amount BIGINT NOT NULL,
		quantity INT NOT NULL DEFAULT 1,
		INDEX idx_order (order_id)
	)`

	createProductSKUsTable := `
	CREATE TABLE IF NOT EXISTS product_skus (
		id INT UNSIGNED NOT NULL AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(255) NOT NULL UNIQUE,
		sku VARCHAR(100) NOT NULL,
		size VARCHAR(20) NOT NULL DEFAULT '',
		is_active TINYINT(1) NOT NULL DEFAULT 1
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"orders", createOrdersTable},
		{"order_items", createOrderItemsTable},
		{"product_skus", createProductSKUsTable},
	}

	for _, tbl := range tables {
		if _, err := db.Exec(tbl.query); err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
