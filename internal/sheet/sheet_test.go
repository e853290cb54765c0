package sheet

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestFindColumn(t *testing.T) {
	tests := []struct {
		name       string
		header     []string
		candidates []string
		want       int
		found      bool
	}{
		{"Case insensitive substring", []string{"Name", "Article_ID"}, []string{"article"}, 1, true},
		{"Cyrillic header", []string{"Артикул", "Товар"}, CodeColumn.Candidates, 0, true},
		{"First header wins over candidate order", []string{"Stock code", "Остаток"}, QuantityColumn.Candidates, 0, true},
		{"Not found", []string{"foo", "bar"}, PriceColumn.Candidates, -1, false},
		{"Empty header", nil, CodeColumn.Candidates, -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := FindColumn(tt.header, tt.candidates)
			if got != tt.want || found != tt.found {
				t.Errorf("Expected (%d, %v), got (%d, %v)", tt.want, tt.found, got, found)
			}
		})
	}
}

func TestResolveMissingColumn(t *testing.T) {
	header := []string{"Артикул", "Модель"}

	_, err := Resolve("price", header, CodeColumn, NameColumn, PriceColumn)
	if !errors.Is(err, ErrColumnNotFound) {
		t.Fatalf("Expected ErrColumnNotFound, got %v", err)
	}
	var colErr *ColumnError
	if !errors.As(err, &colErr) {
		t.Fatalf("Expected *ColumnError, got %T", err)
	}
	if colErr.Field != "price" || colErr.Table != "price" {
		t.Errorf("Unexpected error details: %+v", colErr)
	}
}

func TestResolve(t *testing.T) {
	header := []string{"Код товара", "Наименование", "Розничная цена, руб"}

	cols, err := Resolve("price", header, CodeColumn, NameColumn, PriceColumn)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	// "Код товара" contains "товар" too, but it is the first header so it wins for both
	if cols["code"] != 0 || cols["price"] != 2 {
		t.Errorf("Unexpected columns: %v", cols)
	}
	if cols["name"] != 0 {
		t.Errorf("Expected name to resolve to first matching header, got %d", cols["name"])
	}
}

func TestParseCSV(t *testing.T) {
	data := []byte("\xEF\xBB\xBF Артикул ,Модель,Цена\nA1,\"METEOR T2 45 H\",\"12 500,00\"\n,,\nA2,MK 250\n")

	table, err := ParseCSV(data)
	if err != nil {
		t.Fatalf("ParseCSV error: %v", err)
	}
	if table.Header[0] != "Артикул" {
		t.Errorf("Expected BOM and spaces stripped, got %q", table.Header[0])
	}
	if len(table.Rows) != 2 {
		t.Fatalf("Expected blank row skipped, got %d rows", len(table.Rows))
	}
	if table.Cell(0, 2) != "12 500,00" {
		t.Errorf("Unexpected price cell %q", table.Cell(0, 2))
	}
	if table.Cell(1, 2) != "" {
		t.Errorf("Expected short row to read empty cell, got %q", table.Cell(1, 2))
	}
}

func TestParseCSVEmpty(t *testing.T) {
	if _, err := ParseCSV(nil); err == nil {
		t.Error("Expected error for empty input")
	}
}

func TestParseXLSX(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	f.SetSheetRow(sheet, "A1", &[]string{"Артикул", "В наличии"})
	f.SetSheetRow(sheet, "A2", &[]string{"A1", "3"})

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		t.Fatalf("write xlsx: %v", err)
	}

	table, err := Parse(buf.Bytes(), FormatXLSX)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(table.Header) != 2 || table.Header[1] != "В наличии" {
		t.Errorf("Unexpected header %v", table.Header)
	}
	if len(table.Rows) != 1 || table.Cell(0, 1) != "3" {
		t.Errorf("Unexpected rows %v", table.Rows)
	}
}

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat("XLSX"); err != nil || f != FormatXLSX {
		t.Errorf("Expected xlsx, got %v, %v", f, err)
	}
	if f, err := ParseFormat(""); err != nil || f != FormatCSV {
		t.Errorf("Expected csv default, got %v, %v", f, err)
	}
	if _, err := ParseFormat("ods"); err == nil {
		t.Error("Expected error for unsupported format")
	}
}

func TestClientFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Write([]byte("Артикул,Остаток\nA1,3\n"))
	}))
	defer srv.Close()

	table, err := NewClient(5*time.Second, FormatCSV).Fetch(context.Background(), "stock", srv.URL)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(table.Rows) != 1 || table.Cell(0, 0) != "A1" {
		t.Errorf("Unexpected table %+v", table)
	}
}

func TestClientFetchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"Server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"Login page", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte("<!DOCTYPE html><html><head><title>Sign in</title></head><body></body></html>"))
		}},
		{"Empty body", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/csv")
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewClient(5*time.Second, FormatCSV).Fetch(context.Background(), "price", srv.URL)
			var fetchErr *FetchError
			if !errors.As(err, &fetchErr) {
				t.Fatalf("Expected *FetchError, got %v", err)
			}
			if fetchErr.Source != "price" || fetchErr.URL != srv.URL {
				t.Errorf("Unexpected error details: %+v", fetchErr)
			}
		})
	}
}

func TestClientFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte("a,b\n1,2\n"))
	}))
	defer srv.Close()

	_, err := NewClient(20*time.Millisecond, FormatCSV).Fetch(context.Background(), "price", srv.URL)
	if err == nil {
		t.Error("Expected timeout error")
	}
}

func TestPageTitle(t *testing.T) {
	body := []byte("<html><head><title> Google Sheets </title></head></html>")
	if got := pageTitle(body); got != "Google Sheets" {
		t.Errorf("Expected 'Google Sheets', got '%s'", got)
	}
	if !isHTML("", body) {
		t.Error("Expected body to be detected as HTML")
	}
	if isHTML("text/csv", []byte("a,b\n")) {
		t.Error("CSV should not be detected as HTML")
	}
}
