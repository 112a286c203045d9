package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/framedesk/order-intake/constants"
	"github.com/framedesk/order-intake/internal/entity"
)

// SQLiteStore is a file-backed Store used by local catalog crawls and as a
// realistic store in tests, where standing up Postgres is not worth it.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS catalog_entries (
	vendor_id           TEXT NOT NULL,
	brand               TEXT NOT NULL,
	model               TEXT NOT NULL,
	color_code          TEXT NOT NULL,
	color_name          TEXT NOT NULL DEFAULT '',
	sku                 TEXT NOT NULL DEFAULT '',
	upc                 TEXT NOT NULL DEFAULT '',
	ean                 TEXT NOT NULL DEFAULT '',
	wholesale_cost      REAL,
	msrp                REAL,
	eye_size            INTEGER NOT NULL,
	bridge              INTEGER NOT NULL DEFAULT 0,
	temple_length       INTEGER NOT NULL DEFAULT 0,
	full_size           TEXT NOT NULL DEFAULT '',
	material            TEXT NOT NULL DEFAULT '',
	gender              TEXT NOT NULL DEFAULT '',
	in_stock            INTEGER NOT NULL DEFAULT 0,
	availability_status TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (vendor_id, model, color_code, eye_size)
);
CREATE INDEX IF NOT EXISTS idx_catalog_brand ON catalog_entries (vendor_id, brand, model, eye_size);
CREATE INDEX IF NOT EXISTS idx_catalog_size  ON catalog_entries (vendor_id, eye_size);
`

// OpenSQLite opens (and if needed initializes) a SQLite catalog at path.
// ":memory:" works for tests.
func OpenSQLite(ctx context.Context, path string, logger *slog.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite catalog: %w", err)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init sqlite catalog schema: %w", err)
	}
	logger.Info("catalog.sqlite.open", "path", path)
	return &SQLiteStore{db: db, logger: logger}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

const catalogColumns = `vendor_id, brand, model, color_code, color_name, sku, upc, ean,
	wholesale_cost, msrp, eye_size, bridge, temple_length, full_size, material, gender,
	in_stock, availability_status`

func (s *SQLiteStore) FindExact(ctx context.Context, vendorID, brand, model, colorCode string, eyeSize int) (*entity.CatalogEntry, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+catalogColumns+` FROM catalog_entries
		 WHERE vendor_id = ? AND brand = ? AND model = ? AND color_code = ? AND eye_size = ?`,
		norm(vendorID), upper(brand), upper(model), upper(colorCode), eyeSize)
	e, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return e, err
}

func (s *SQLiteStore) FindByModelSize(ctx context.Context, vendorID, brand, model string, eyeSize int) ([]*entity.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+catalogColumns+` FROM catalog_entries
		 WHERE vendor_id = ? AND brand = ? AND model = ? AND eye_size = ?`,
		norm(vendorID), upper(brand), upper(model), eyeSize)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

func (s *SQLiteStore) FindBySize(ctx context.Context, vendorID string, eyeSize int) ([]*entity.CatalogEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+catalogColumns+` FROM catalog_entries WHERE vendor_id = ? AND eye_size = ?`,
		norm(vendorID), eyeSize)
	if err != nil {
		return nil, err
	}
	return scanEntries(rows)
}

// UpsertBatch writes entries in one transaction. Conflicts on the catalog
// key update in place: latest crawl wins.
func (s *SQLiteStore) UpsertBatch(ctx context.Context, entries []*entity.CatalogEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_entries (`+catalogColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (vendor_id, model, color_code, eye_size) DO UPDATE SET
			brand = excluded.brand,
			color_name = excluded.color_name,
			sku = excluded.sku,
			upc = excluded.upc,
			ean = excluded.ean,
			wholesale_cost = excluded.wholesale_cost,
			msrp = excluded.msrp,
			bridge = excluded.bridge,
			temple_length = excluded.temple_length,
			full_size = excluded.full_size,
			material = excluded.material,
			gender = excluded.gender,
			in_stock = excluded.in_stock,
			availability_status = excluded.availability_status`)
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range entries {
		_, err := stmt.ExecContext(ctx,
			norm(e.VendorID), upper(e.Brand), upper(e.Model), upper(e.ColorCode), e.ColorName,
			e.SKU, e.UPC, e.EAN, e.WholesaleCost, e.MSRP, e.EyeSize, e.Bridge, e.TempleLength,
			e.FullSize, e.Material, e.Gender, boolToInt(e.InStock), string(e.AvailabilityStatus))
		if err != nil {
			return fmt.Errorf("upsert %s/%s/%s: %w", e.VendorID, e.Model, e.ColorCode, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	s.logger.Debug("catalog.sqlite.upsert", "entries", len(entries))
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*entity.CatalogEntry, error) {
	var e entity.CatalogEntry
	var inStock int
	var avail string
	err := row.Scan(&e.VendorID, &e.Brand, &e.Model, &e.ColorCode, &e.ColorName, &e.SKU,
		&e.UPC, &e.EAN, &e.WholesaleCost, &e.MSRP, &e.EyeSize, &e.Bridge, &e.TempleLength,
		&e.FullSize, &e.Material, &e.Gender, &inStock, &avail)
	if err != nil {
		return nil, err
	}
	e.InStock = inStock != 0
	e.AvailabilityStatus = availabilityFromString(avail)
	return &e, nil
}

func scanEntries(rows *sql.Rows) ([]*entity.CatalogEntry, error) {
	defer func() { _ = rows.Close() }()
	var out []*entity.CatalogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func availabilityFromString(s string) constants.AvailabilityStatus {
	return constants.AvailabilityStatus(s)
}

func norm(s string) string  { return strings.ToLower(strings.TrimSpace(s)) }
func upper(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
