// Command seed-catalog builds the weapon catalog SQLite database from the
// built-in reference data. The skirmish runner opens the result read-only
// via SKIRMISH_CATALOG_DB.
package main

import (
	"database/sql"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"github.com/SwiggitySwerve/mekstation/internal/catalog"
)

func main() {
	outPath := "catalog.db"
	if len(os.Args) > 1 {
		outPath = os.Args[1]
	}
	os.Remove(outPath)

	db, err := sql.Open("sqlite", outPath)
	if err != nil {
		log.Fatalf("sqlite open: %v", err)
	}
	defer db.Close()

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			log.Fatalf("pragma %s: %v", pragma, err)
		}
	}

	if _, err := db.Exec(`CREATE TABLE weapons (
		key TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		class TEXT NOT NULL,
		mode INTEGER NOT NULL DEFAULT 0,
		cluster_kind INTEGER NOT NULL DEFAULT 0,
		damage INTEGER NOT NULL,
		heat INTEGER NOT NULL DEFAULT 0,
		min_range INTEGER NOT NULL DEFAULT 0,
		short_range INTEGER NOT NULL,
		medium_range INTEGER NOT NULL,
		long_range INTEGER NOT NULL,
		to_hit_mod INTEGER NOT NULL DEFAULT 0,
		rack_size INTEGER NOT NULL DEFAULT 0,
		cluster_mod INTEGER NOT NULL DEFAULT 0,
		ammo_key TEXT NOT NULL DEFAULT '',
		semi_guided INTEGER NOT NULL DEFAULT 0
	)`); err != nil {
		log.Fatalf("create weapons: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("begin: %v", err)
	}
	stmt, err := tx.Prepare(`INSERT INTO weapons (
		key, name, class, mode, cluster_kind, damage, heat,
		min_range, short_range, medium_range, long_range,
		to_hit_mod, rack_size, cluster_mod, ammo_key, semi_guided
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		log.Fatalf("prepare: %v", err)
	}

	count := 0
	for _, w := range catalog.Builtin() {
		if _, err := stmt.Exec(w.Key, w.Name, w.Class, int(w.Mode),
			int(w.Cluster), w.Damage, w.Heat, w.MinRange, w.ShortRange,
			w.MediumRange, w.LongRange, w.ToHitMod, w.RackSize,
			w.ClusterMod, w.AmmoKey, w.SemiGuided); err != nil {
			log.Fatalf("insert %s: %v", w.Key, err)
		}
		count++
	}
	if err := tx.Commit(); err != nil {
		log.Fatalf("commit: %v", err)
	}

	log.Printf("Seeded %d weapons into %s", count, outPath)
}
