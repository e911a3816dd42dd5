package database

import (
	"strings"
	"testing"
	"testing/fstest"
)

func TestMigrationFiles(t *testing.T) {
	fsys := fstest.MapFS{
		"migrations/002_later.sql": {Data: []byte("SELECT 2;")},
		"migrations/001_first.sql": {Data: []byte("SELECT 1;")},
		"migrations/README.md":     {Data: []byte("notes")},
	}
	names, err := migrationFiles(fsys)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(names) != 2 || names[0] != "001_first.sql" || names[1] != "002_later.sql" {
		t.Fatalf("unexpected order: %v", names)
	}
}

func TestEmbeddedSchema(t *testing.T) {
	names, err := migrationFiles(migrationsFS)
	if err != nil || len(names) == 0 {
		t.Fatalf("expected embedded migrations, got %v %v", names, err)
	}
	content, err := migrationsFS.ReadFile("migrations/" + names[0])
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, table := range []string{"firm_offers", "deals", "proposals"} {
		if !strings.Contains(string(content), "CREATE TABLE IF NOT EXISTS "+table) {
			t.Fatalf("expected %s in schema", table)
		}
	}
}
