package scan

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDigits(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		want    string
		wantErr bool
	}{
		{"plain upc", "a barcode reading 036000291452", "036000291452", false},
		{"digits inside text", "label says 8 count, code 049000028911 on the side", "049000028911", false},
		{"ean8", "code 96385074", "96385074", false},
		{"too short", "expires 2025, aisle 3", "", true},
		{"no digits", "a can of soup", "", true},
		{"picks the longest run", "lot 1234 code 012345678905", "012345678905", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractDigits(tt.caption)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrNoBarcode)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaptionClientExtractBarcode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "https://example.com/photo.jpg", body["image"])

		json.NewEncoder(w).Encode(map[string]string{
			"caption": "a product with barcode 036000291452 printed below",
		})
	}))
	defer srv.Close()

	c := NewCaptionClient(srv.URL, "test-key")
	code, err := c.ExtractBarcode("https://example.com/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, "036000291452", code)
}

func TestCaptionClientServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewCaptionClient(srv.URL, "")
	_, err := c.ExtractBarcode("https://example.com/photo.jpg")
	assert.Error(t, err)
}

func TestUPCClientLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "036000291452", r.URL.Query().Get("upc"))
		json.NewEncoder(w).Encode(map[string]any{
			"items": []Product{{Title: "Kleenex Tissues", Description: "85 count", Category: "Toiletries"}},
		})
	}))
	defer srv.Close()

	c := NewUPCClient(srv.URL)
	product, err := c.Lookup("036000291452")
	require.NoError(t, err)
	assert.Equal(t, "Kleenex Tissues", product.Title)
}

func TestUPCClientNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"items": []Product{}})
	}))
	defer srv.Close()

	c := NewUPCClient(srv.URL)
	_, err := c.Lookup("00000000")
	assert.Error(t, err)
}
