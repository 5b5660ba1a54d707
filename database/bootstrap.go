package database

import (
	"database/sql"
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"raitha/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the PK migration BEFORE AutoMigrate so GORM doesn't attempt the
	// failing ALTER TABLE on old databases.
	if err := migratePredictionsAddPK(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.PredictionRecord{},
		&entities.FeedbackRecord{},
		&entities.ModelVersion{},
		&entities.LayoutMap{},
		&entities.Article{},
		&entities.ArticleChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migratePredictionsAddPK rebuilds prediction_records if an older schema left
// the table without a primary key on id.
func migratePredictionsAddPK(db *gorm.DB) error {
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='prediction_records'`).Scan(&tbl).Error; err != nil {
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
	if err := db.Raw(`PRAGMA table_info(prediction_records)`).Scan(&cols).Error; err != nil {
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
CREATE TABLE prediction_records_new (
    id TEXT PRIMARY KEY,
    farmer_uid TEXT,
    farmer_input TEXT,       -- JSON text (gorm serializer)
    predictions TEXT,
    weather_snapshot TEXT,
    recommendations TEXT,
    feedback_received NUMERIC,
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
	copySQL := fmt.Sprintf(`
INSERT INTO prediction_records_new (id, farmer_uid, farmer_input, predictions, weather_snapshot, recommendations, feedback_received, created_at)
SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM prediction_records;
`,
		sel("id"),
		sel("farmer_uid"),
		sel("farmer_input"),
		sel("predictions"),
		sel("weather_snapshot"),
		sel("recommendations"),
		sel("feedback_received"),
		sel("created_at"),
	)

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`PRAGMA foreign_keys=OFF`).Error; err != nil {
			return err
		}
		if err := tx.Exec(createSQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(copySQL).Error; err != nil {
			return err
		}
		if err := tx.Exec(`DROP TABLE prediction_records`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE prediction_records_new RENAME TO prediction_records`).Error; err != nil {
			return err
		}
		return tx.Exec(`PRAGMA foreign_keys=ON`).Error
	})
}
