package catalog

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store is a read-only SQLite-backed weapon catalog.
type Store struct {
	db *sql.DB
}

// Open opens the catalog database read-only.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Weapon loads one weapon row by key.
func (s *Store) Weapon(key string) (Weapon, error) {
	row := s.db.QueryRow(`
		SELECT key, name, class, mode, cluster_kind, damage, heat,
		       min_range, short_range, medium_range, long_range,
		       to_hit_mod, rack_size, cluster_mod, ammo_key, semi_guided
		FROM weapons WHERE key = ?`, key)

	var w Weapon
	var mode, cluster int
	err := row.Scan(&w.Key, &w.Name, &w.Class, &mode, &cluster, &w.Damage,
		&w.Heat, &w.MinRange, &w.ShortRange, &w.MediumRange, &w.LongRange,
		&w.ToHitMod, &w.RackSize, &w.ClusterMod, &w.AmmoKey, &w.SemiGuided)
	if err == sql.ErrNoRows {
		return Weapon{}, fmt.Errorf("catalog: unknown weapon %q", key)
	}
	if err != nil {
		return Weapon{}, fmt.Errorf("load weapon %q: %w", key, err)
	}
	w.Mode = Mode(mode)
	w.Cluster = ClusterKind(cluster)
	return w, nil
}

// All loads every weapon in the catalog, for preloading into a Static map.
func (s *Store) All() (Static, error) {
	rows, err := s.db.Query(`
		SELECT key, name, class, mode, cluster_kind, damage, heat,
		       min_range, short_range, medium_range, long_range,
		       to_hit_mod, rack_size, cluster_mod, ammo_key, semi_guided
		FROM weapons`)
	if err != nil {
		return nil, fmt.Errorf("load weapons: %w", err)
	}
	defer rows.Close()

	out := Static{}
	for rows.Next() {
		var w Weapon
		var mode, cluster int
		if err := rows.Scan(&w.Key, &w.Name, &w.Class, &mode, &cluster,
			&w.Damage, &w.Heat, &w.MinRange, &w.ShortRange, &w.MediumRange,
			&w.LongRange, &w.ToHitMod, &w.RackSize, &w.ClusterMod,
			&w.AmmoKey, &w.SemiGuided); err != nil {
			return nil, fmt.Errorf("scan weapon: %w", err)
		}
		w.Mode = Mode(mode)
		w.Cluster = ClusterKind(cluster)
		out[w.Key] = w
	}
	return out, rows.Err()
}
