// database/bootstrap.go
package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"agrilink/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// run the PK migration BEFORE AutoMigrate so GORM doesn't try the
	// failing ALTER TABLE on legacy databases
	if err := migrateAuditLogsAddPK(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.FarmerProfile{},
		&entities.LandDetails{},
		&entities.LandIntegration{},
		&entities.SupplierDocument{},
		&entities.Product{},
		&entities.Order{},
		&entities.Scheme{},
		&entities.SchemeProfile{},
		&entities.AuditLog{}, // now safe: table already has PK
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateAuditLogsAddPK rebuilds audit_logs if it lacks a primary key on id.
// Early deployments created the table by hand without one.
func migrateAuditLogsAddPK(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='audit_logs'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	type colInfo struct {
		Cid       int
		Name      string
		Type      string
		NotNull   int
		DfltValue sql.NullString
		Pk        int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(audit_logs)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	hasIDasPK := false
	for _, c := range cols {
		if strings.ToLower(c.Name) == "id" {
			if c.Pk == 1 {
				hasIDasPK = true
			}
			break
		}
	}
	if hasIDasPK {
		return nil
	}

	createSQL := `
CREATE TABLE audit_logs_new (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id TEXT,
    user_name TEXT,
    user_role TEXT,
    action TEXT,
    resource_type TEXT,
    resource_id TEXT,
    resource_name TEXT,
    changes TEXT,       -- JSON text (gorm serializer)
    metadata TEXT,      -- JSON text (gorm serializer)
    ip_address TEXT,
    user_agent TEXT,
    status TEXT,
    error_message TEXT,
    created_at DATETIME
);
`
	oldCols := map[string]bool{}
	for _, c := range cols {
		oldCols[strings.ToLower(c.Name)] = true
	}
	sel := func(name string) string {
		if oldCols[name] {
			return name
		}
		return "NULL AS " + name
	}
	names := []string{
		"user_id", "user_name", "user_role", "action", "resource_type",
		"resource_id", "resource_name", "changes", "metadata",
		"ip_address", "user_agent", "status", "error_message", "created_at",
	}
	sels := make([]string, len(names))
	for i, n := range names {
		sels[i] = sel(n)
	}
	copySQL := fmt.Sprintf(`
INSERT INTO audit_logs_new (%s)
SELECT %s FROM audit_logs;
`, strings.Join(names, ", "), strings.Join(sels, ", "))

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(createSQL).Error; err != nil {
			return fmt.Errorf("create new table: %w", err)
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return fmt.Errorf("copy rows: %w", err)
		}
		if err := tx.Exec(`DROP TABLE audit_logs`).Error; err != nil {
			return fmt.Errorf("drop old table: %w", err)
		}
		if err := tx.Exec(`ALTER TABLE audit_logs_new RENAME TO audit_logs`).Error; err != nil {
			return fmt.Errorf("rename: %w", err)
		}
		return nil
	})
}
