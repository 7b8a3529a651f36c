package repos

import (
	"database/sql"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/kasactl/internal/models"
)

const initSchema = `
  CREATE TABLE IF NOT EXISTS discovery_run (
    id VARCHAR(36) PRIMARY KEY,
    run_time TIMESTAMP,
    device_count INTEGER
  );

  CREATE TABLE IF NOT EXISTS device (
    run_id VARCHAR(36) REFERENCES discovery_run(id),
    ip TEXT,
    alias TEXT,
    mac TEXT,
    model TEXT,
    device_type TEXT,
    detail TEXT,
    PRIMARY KEY (run_id, ip)
  );
`

// DeviceRepo keeps a history of inventory exports.
type DeviceRepo struct {
	logger *log.Logger
	db     *sql.DB
}

func NewDeviceRepo(logger *log.Logger, db *sql.DB) (*DeviceRepo, error) {

	_, err := db.Exec(initSchema)
	if err != nil {
		return nil, fmt.Errorf("Error initialising device schema: %w", err)
	}

	return &DeviceRepo{logger: logger, db: db}, nil
}

// SaveRun stores a discovery run and its devices in one transaction.
func (r *DeviceRepo) SaveRun(run models.DiscoveryRun, records []models.DeviceRecord) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("Error starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO discovery_run (id, run_time, device_count) VALUES ($1, $2, $3);`,
		run.ID,
		run.Time,
		run.DeviceCount,
	)
	if err != nil {
		return fmt.Errorf("Error adding discovery run (%s): %w", run.ID, err)
	}

	for _, rec := range records {
		_, err := tx.Exec(
			`INSERT INTO device
      (run_id, ip, alias, mac, model, device_type, detail)
     VALUES ($1, $2, $3, $4, $5, $6, $7);`,
			run.ID,
			rec.IP,
			rec.Alias,
			rec.MAC,
			rec.Model,
			rec.Type,
			rec.Detail,
		)
		if err != nil {
			return fmt.Errorf("Error adding device (%s): %w", rec.IP, err)
		}
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("Error saving discovery run: %w", err)
	}

	r.logger.Debug("saved discovery run", "id", run.ID, "devices", len(records))
	return nil
}
