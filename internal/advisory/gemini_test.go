package advisory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gudanglab-backend/internal/models"
)

func geminiReply(t *testing.T, suggestions []Suggestion) []byte {
	t.Helper()
	inner, err := json.Marshal(suggestions)
	if err != nil {
		t.Fatal(err)
	}
	body, err := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]any{{"text": string(inner)}}}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return body
}

func TestParseSuggestions(t *testing.T) {
	want := []Suggestion{
		{ItemName: "Reagen Glukosa", Reason: "Stok di bawah minimum", RecommendedQty: 10, Urgency: "TINGGI"},
	}
	got := ParseSuggestions(geminiReply(t, want))
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %v, mau %v", got, want)
	}
}

func TestParseSuggestionsBrokenBody(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"bukan JSON", "halaman error"},
		{"tanpa kandidat", `{"candidates": []}`},
		{"isi saran rusak", `{"candidates":[{"content":{"parts":[{"text":"bukan array"}]}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSuggestions([]byte(tt.raw)); len(got) != 0 {
				t.Errorf("got %v, mau kosong", got)
			}
		})
	}
}

func TestSuggestionsEndToEnd(t *testing.T) {
	want := []Suggestion{
		{ItemName: "Tabung EDTA", Reason: "Pemakaian naik", RecommendedQty: 5, Urgency: "SEDANG"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") == "" {
			t.Error("API key tidak terkirim")
		}
		w.Write(geminiReply(t, want))
	}))
	defer srv.Close()

	c := NewClient("kunci-tes", "model-tes")
	c.baseURL = srv.URL

	got := c.Suggestions(
		[]models.InventoryItem{{Name: "Tabung EDTA", Stock: 1, MinStock: 5}},
		[]models.StockTransaction{{Type: models.TxOut, ItemName: "Tabung EDTA", Quantity: 4, Date: "2026-08-30"}},
	)
	if len(got) != 1 || got[0] != want[0] {
		t.Errorf("got %v, mau %v", got, want)
	}
}

func TestSuggestionsServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota habis", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient("kunci-tes", "model-tes")
	c.baseURL = srv.URL

	if got := c.Suggestions(nil, nil); len(got) != 0 {
		t.Errorf("got %v, mau kosong", got)
	}
}

func TestSuggestionsNoKey(t *testing.T) {
	c := NewClient("", "model-tes")
	if got := c.Suggestions(nil, nil); len(got) != 0 {
		t.Errorf("got %v, mau kosong", got)
	}
}
