package siunits

import (
	"database/sql"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// ErrRegistryNotFound is returned by Catalog.Load for an unknown id.
var ErrRegistryNotFound = errors.New("registry not found")

// Catalog stores registry variants in SQLite, each under its own UUID.
type Catalog struct {
	db     *sql.DB
	logger *log.Logger
}

// CatalogEntry identifies a stored registry.
type CatalogEntry struct {
	ID   uuid.UUID
	Name string
}

// OpenCatalog opens (creating if needed) a SQLite catalog at path.
func OpenCatalog(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	c, err := NewCatalog(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return c, nil
}

// NewCatalog uses an already opened database.
func NewCatalog(db *sql.DB) (*Catalog, error) {
	c := &Catalog{db: db, logger: log.New(io.Discard)}
	if err := c.initSchema(); err != nil {
		return nil, fmt.Errorf("init catalog schema: %w", err)
	}
	return c, nil
}

// WithLogger sets the logger used for catalog operations.
func (c *Catalog) WithLogger(logger *log.Logger) *Catalog {
	c.logger = logger
	return c
}

func (c *Catalog) Close() error { return c.db.Close() }

func (c *Catalog) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS registries (
			id TEXT PRIMARY KEY,
			name TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS prefixes (
			registry_id TEXT,
			ord INTEGER,
			symbol TEXT,
			exponent INTEGER
		);`,
		`CREATE TABLE IF NOT EXISTS units (
			registry_id TEXT,
			ord INTEGER,
			symbol TEXT,
			base INTEGER,
			scale REAL,
			affine_offset REAL,
			d0 INTEGER, d1 INTEGER, d2 INTEGER, d3 INTEGER,
			d4 INTEGER, d5 INTEGER, d6 INTEGER
		);`,
	}
	for _, q := range queries {
		if _, err := c.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// Save stores reg under a new id.
func (c *Catalog) Save(reg *Registry) (uuid.UUID, error) {
	id := uuid.New()
	tx, err := c.db.Begin()
	if err != nil {
		return uuid.Nil, err
	}
	if err := persistRegistry(tx, id, reg); err != nil {
		tx.Rollback()
		return uuid.Nil, fmt.Errorf("save registry %q: %w", reg.Name(), err)
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	c.logger.Debug("registry saved", "id", id, "name", reg.Name(),
		"prefixes", len(reg.prefixOrder), "units", len(reg.unitOrder))
	return id, nil
}

func persistRegistry(tx *sql.Tx, id uuid.UUID, reg *Registry) error {
	_, err := tx.Exec(`INSERT INTO registries (id, name) VALUES (?, ?)`, id.String(), reg.Name())
	if err != nil {
		return err
	}
	for i, p := range reg.prefixOrder {
		_, err := tx.Exec(`INSERT INTO prefixes (registry_id, ord, symbol, exponent) VALUES (?, ?, ?, ?)`,
			id.String(), i, p.Symbol, p.Exponent)
		if err != nil {
			return err
		}
	}
	for i, u := range reg.unitOrder {
		d := u.Dimension
		_, err := tx.Exec(`INSERT INTO units (registry_id, ord, symbol, base, scale, affine_offset, d0, d1, d2, d3, d4, d5, d6)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id.String(), i, u.Symbol, u.Base, u.Scale, u.Offset, d[0], d[1], d[2], d[3], d[4], d[5], d[6])
		if err != nil {
			return err
		}
	}
	return nil
}

// Load rebuilds the registry stored under id.
func (c *Catalog) Load(id uuid.UUID) (*Registry, error) {
	var name string
	err := c.db.QueryRow(`SELECT name FROM registries WHERE id = ?`, id.String()).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRegistryNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	prefixes, err := c.loadPrefixes(id)
	if err != nil {
		return nil, fmt.Errorf("load prefixes: %w", err)
	}
	units, err := c.loadUnits(id)
	if err != nil {
		return nil, fmt.Errorf("load units: %w", err)
	}
	reg, err := NewRegistry(name, prefixes, units)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("registry loaded", "id", id, "name", name)
	return reg, nil
}

func (c *Catalog) loadPrefixes(id uuid.UUID) ([]Prefix, error) {
	rows, err := c.db.Query(`SELECT symbol, exponent FROM prefixes WHERE registry_id = ? ORDER BY ord`, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var prefixes []Prefix
	for rows.Next() {
		var p Prefix
		if err := rows.Scan(&p.Symbol, &p.Exponent); err != nil {
			return nil, err
		}
		prefixes = append(prefixes, p)
	}
	return prefixes, rows.Err()
}

func (c *Catalog) loadUnits(id uuid.UUID) ([]Unit, error) {
	rows, err := c.db.Query(`SELECT symbol, base, scale, affine_offset, d0, d1, d2, d3, d4, d5, d6
		FROM units WHERE registry_id = ? ORDER BY ord`, id.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var units []Unit
	for rows.Next() {
		var u Unit
		d := &u.Dimension
		if err := rows.Scan(&u.Symbol, &u.Base, &u.Scale, &u.Offset,
			&d[0], &d[1], &d[2], &d[3], &d[4], &d[5], &d[6]); err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// List returns the stored registries.
func (c *Catalog) List() ([]CatalogEntry, error) {
	rows, err := c.db.Query(`SELECT id, name FROM registries ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var entries []CatalogEntry
	for rows.Next() {
		var raw string
		var e CatalogEntry
		if err := rows.Scan(&raw, &e.Name); err != nil {
			return nil, err
		}
		if e.ID, err = uuid.Parse(raw); err != nil {
			return nil, fmt.Errorf("registry id %q: %w", raw, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
