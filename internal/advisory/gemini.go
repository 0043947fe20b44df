package advisory

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"gudanglab-backend/internal/models"
)

// Suggestion: satu rekomendasi pemesanan dari model.
type Suggestion struct {
	ItemName       string `json:"itemName"`
	Reason         string `json:"reason"`
	RecommendedQty int    `json:"recommendedQty"`
	Urgency        string `json:"urgency"` // TINGGI | SEDANG | RENDAH
}

type Client struct {
	apiKey  string
	model   string
	baseURL string
	httpc   *http.Client
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		baseURL: "https://generativelanguage.googleapis.com/v1beta",
		httpc:   &http.Client{Timeout: 30 * time.Second},
	}
}

// Struktur request/response generateContent, hanya field yang dipakai.
type geminiRequest struct {
	Contents         []geminiContent  `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string          `json:"responseMimeType"`
	ResponseSchema   json.RawMessage `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

var suggestionSchema = json.RawMessage(`{
  "type": "ARRAY",
  "items": {
    "type": "OBJECT",
    "properties": {
      "itemName":       {"type": "STRING"},
      "reason":         {"type": "STRING"},
      "recommendedQty": {"type": "INTEGER"},
      "urgency":        {"type": "STRING", "enum": ["TINGGI", "SEDANG", "RENDAH"]}
    },
    "required": ["itemName", "reason", "recommendedQty", "urgency"]
  }
}`)

func buildPrompt(items []models.InventoryItem, txs []models.StockTransaction) string {
	var buf bytes.Buffer
	buf.WriteString("Anda analis stok laboratorium klinik. Berdasarkan data berikut, ")
	buf.WriteString("sarankan barang yang perlu dipesan beserta jumlah dan urgensinya.\n\nStok saat ini:\n")
	for _, it := range items {
		fmt.Fprintf(&buf, "- %s (LOT %s): stok %d %s, minimum %d, expired %s\n",
			it.Name, it.LotNumber, it.Stock, it.Unit, it.MinStock, it.ExpiryDate)
	}
	buf.WriteString("\nTransaksi terakhir:\n")
	limit := 50
	if len(txs) < limit {
		limit = len(txs)
	}
	for _, t := range txs[:limit] {
		fmt.Fprintf(&buf, "- %s %s %d %s pada %s\n", t.Type, t.ItemName, t.Quantity, t.Unit, t.Date)
	}
	return buf.String()
}

// Suggestions meminta rekomendasi pemesanan ke Gemini. Semua kegagalan
// (key kosong, HTTP error, JSON tidak valid) menghasilkan daftar kosong,
// laporan tetap jalan dengan manualOrderQty.
func (c *Client) Suggestions(items []models.InventoryItem, txs []models.StockTransaction) []Suggestion {
	if c == nil || c.apiKey == "" {
		return []Suggestion{}
	}

	reqBody := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: buildPrompt(items, txs)}}},
		},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   suggestionSchema,
		},
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		log.Println("Advisory: request gagal di-encode:", err)
		return []Suggestion{}
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	resp, err := c.httpc.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		log.Println("Advisory: request ke Gemini gagal:", err)
		return []Suggestion{}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Println("Advisory: respons gagal dibaca:", err)
		return []Suggestion{}
	}
	if resp.StatusCode != http.StatusOK {
		log.Printf("Advisory: Gemini balas status %d: %s", resp.StatusCode, raw)
		return []Suggestion{}
	}

	return ParseSuggestions(raw)
}

// ParseSuggestions membongkar respons generateContent menjadi daftar
// rekomendasi. Respons rusak menghasilkan daftar kosong.
func ParseSuggestions(raw []byte) []Suggestion {
	var gr geminiResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		log.Println("Advisory: respons bukan JSON valid:", err)
		return []Suggestion{}
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return []Suggestion{}
	}

	var suggestions []Suggestion
	text := gr.Candidates[0].Content.Parts[0].Text
	if err := json.Unmarshal([]byte(text), &suggestions); err != nil {
		log.Println("Advisory: isi saran bukan JSON valid:", err)
		return []Suggestion{}
	}
	return suggestions
}
