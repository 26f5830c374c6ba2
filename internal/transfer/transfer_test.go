package transfer_test

import (
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/estudotatico/backend/internal/store"
	"github.com/estudotatico/backend/internal/transfer"
)

func newService(t *testing.T) (*transfer.Service, *store.SQLiteStore, *store.Records) {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	records := store.NewRecords(s, "default")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return transfer.NewService(records, logger), s, records
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, kv, records := newService(t)

	kv.Set(records.Keys().Exams(), []byte(`[{"concurso_info":{"nome":"PM SP"}}]`))
	kv.Set(records.Keys().Progress("pm_sp"), []byte(`{"Direito Penal":{"Furto":"questions"}}`))
	kv.Set("unrelated_key", []byte(`"ignored"`))

	code, err := svc.Export()
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	// import into a fresh store
	svc2, kv2, records2 := newService(t)
	count, err := svc2.Import(code)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if count != 2 {
		t.Errorf("imported %d keys, want 2 (namespace only)", count)
	}

	got, err := kv2.Get(records2.Keys().Progress("pm_sp"))
	if err != nil {
		t.Fatalf("imported key missing: %v", err)
	}
	if string(got) != `{"Direito Penal":{"Furto":"questions"}}` {
		t.Errorf("imported value = %s", got)
	}
	if _, err := kv2.Get("unrelated_key"); !errors.Is(err, store.ErrNotFound) {
		t.Error("export leaked a key outside the namespace")
	}
}

func TestImportOverwritesExistingKeys(t *testing.T) {
	svc, kv, records := newService(t)
	kv.Set(records.Keys().DailyTasks(), []byte(`{"date":"2025-03-10","flashCount":2}`))
	code, _ := svc.Export()

	kv.Set(records.Keys().DailyTasks(), []byte(`{"date":"2025-03-11","flashCount":9}`))
	if _, err := svc.Import(code); err != nil {
		t.Fatalf("import: %v", err)
	}

	got, _ := kv.Get(records.Keys().DailyTasks())
	if string(got) != `{"date":"2025-03-10","flashCount":2}` {
		t.Errorf("import did not overwrite: %s", got)
	}
}

func TestImportRejectsGarbage(t *testing.T) {
	svc, kv, _ := newService(t)

	for _, code := range []string{"not base64 !!!", "aGVsbG8=", ""} {
		count, err := svc.Import(code)
		if !errors.Is(err, transfer.ErrInvalidCode) {
			t.Errorf("Import(%q) error = %v, want ErrInvalidCode", code, err)
		}
		if count != 0 {
			t.Errorf("Import(%q) wrote %d keys", code, count)
		}
	}

	keys, _ := kv.Keys("")
	if len(keys) != 0 {
		t.Errorf("garbage import wrote keys: %v", keys)
	}
}
