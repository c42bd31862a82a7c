package repository

import (
	"context"
	"testing"

	"github.com/recibos/ticketero-api/internal/infrastructure/spreadsheet"
	"go.uber.org/zap"
)

// fakeSource serves canned snapshots keyed by sheet name.
type fakeSource struct {
	sheets map[string]*spreadsheet.Snapshot
}

func (f *fakeSource) Load(ctx context.Context, sheet string) (*spreadsheet.Snapshot, error) {
	snap, ok := f.sheets[sheet]
	if !ok {
		return nil, spreadsheet.ErrSheetNotFound
	}
	return snap, nil
}

func customerSheet(rows ...[]string) *spreadsheet.Snapshot {
	return &spreadsheet.Snapshot{
		Headers: []string{"ID_ORDEN", "RUC", "NOMBRE", "RAZON_SOCIAL", "CONTACTO", "DIRECCION"},
		Rows:    rows,
	}
}

func TestFindByOrderID_MatchesOnTaxIDColumn(t *testing.T) {
	source := &fakeSource{sheets: map[string]*spreadsheet.Snapshot{
		"CLIENTES": customerSheet(
			[]string{"5", "1001", "Ana", "", "999", "Av. Uno"},
			[]string{"7", "1002", "Luis", "Comercial Andina SAC", "888", "Av. Dos"},
		),
	}}
	repo := NewCustomerRepository(source, "CLIENTES", zap.NewNop())

	record, err := repo.FindByOrderID(context.Background(), "1002")
	if err != nil {
		t.Fatalf("FindByOrderID returned error: %v", err)
	}

	if record.TaxID != "1002" || record.FullName != "Luis" || record.BusinessName != "Comercial Andina SAC" {
		t.Errorf("unexpected record: %+v", record)
	}
	if record.OrderID != "7" {
		t.Errorf("OrderID = %q, want the matched row's ID_ORDEN cell", record.OrderID)
	}
}

func TestFindByOrderID_FirstMatchWins(t *testing.T) {
	source := &fakeSource{sheets: map[string]*spreadsheet.Snapshot{
		"CLIENTES": customerSheet(
			[]string{"1", "1002", "Primera", "", "", ""},
			[]string{"2", "1002", "Segunda", "", "", ""},
		),
	}}
	repo := NewCustomerRepository(source, "CLIENTES", zap.NewNop())

	record, err := repo.FindByOrderID(context.Background(), "1002")
	if err != nil {
		t.Fatalf("FindByOrderID returned error: %v", err)
	}
	if record.FullName != "Primera" {
		t.Errorf("FullName = %q, want the first matching row", record.FullName)
	}
}

func TestFindByOrderID_NoMatchYieldsEmptyRecord(t *testing.T) {
	source := &fakeSource{sheets: map[string]*spreadsheet.Snapshot{
		"CLIENTES": customerSheet([]string{"1", "1001", "Ana", "", "", ""}),
	}}
	repo := NewCustomerRepository(source, "CLIENTES", zap.NewNop())

	record, err := repo.FindByOrderID(context.Background(), "9999")
	if err != nil {
		t.Fatalf("expected no error for missing customer, got %v", err)
	}
	if !record.IsEmpty() {
		t.Errorf("expected empty record, got %+v", record)
	}
}

func TestFindByOrderID_MissingSheetYieldsEmptyRecord(t *testing.T) {
	repo := NewCustomerRepository(&fakeSource{sheets: map[string]*spreadsheet.Snapshot{}}, "CLIENTES", zap.NewNop())

	record, err := repo.FindByOrderID(context.Background(), "1002")
	if err != nil {
		t.Fatalf("expected no error for missing sheet, got %v", err)
	}
	if !record.IsEmpty() {
		t.Errorf("expected empty record, got %+v", record)
	}
}

func TestFindByOrderID_PositionalFallbackWhenHeadersDrift(t *testing.T) {
	source := &fakeSource{sheets: map[string]*spreadsheet.Snapshot{
		"CLIENTES": {
			Headers: []string{"orden", "ruc", "nombre", "razon", "tel", "dir"},
			Rows: [][]string{
				{"7", "1002", "Luis", "Comercial Andina SAC", "888", "Av. Dos"},
			},
		},
	}}
	repo := NewCustomerRepository(source, "CLIENTES", zap.NewNop())

	record, err := repo.FindByOrderID(context.Background(), "1002")
	if err != nil {
		t.Fatalf("FindByOrderID returned error: %v", err)
	}
	if record.TaxID != "1002" || record.Address != "Av. Dos" {
		t.Errorf("positional fallback failed: %+v", record)
	}
}
