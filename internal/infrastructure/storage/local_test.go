package storage

import (
	"context"
	"testing"

	"github.com/spf13/afero"
)

func TestLocalStore_PutWritesFileAndBuildsURL(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewLocalStoreWithFs(fs, "/tickets", "http://localhost:8080/tickets")

	result, err := store.Put(context.Background(), "TICKET_1002_12-08-2025.pdf", []byte("%PDF"), "application/pdf")
	if err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	if result.Name != "TICKET_1002_12-08-2025.pdf" {
		t.Errorf("Name = %q", result.Name)
	}
	if result.URL != "http://localhost:8080/tickets/TICKET_1002_12-08-2025.pdf" {
		t.Errorf("URL = %q", result.URL)
	}

	data, err := afero.ReadFile(fs, "/tickets/TICKET_1002_12-08-2025.pdf")
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "%PDF" {
		t.Errorf("stored bytes = %q", data)
	}
}
