// Package scan wraps the two external services behind the barcode flow:
// an image-captioning endpoint that reads the barcode digits off a photo,
// and a UPC lookup API that turns the code into a product. Both are opaque
// HTTP services; failures come back as plain errors for the caller to
// surface.
package scan

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

var ErrNoBarcode = errors.New("no barcode found in caption")

// Product is what a UPC lookup resolves to, ready to prefill the donation
// form.
type Product struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type CaptionClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

func NewCaptionClient(baseURL, apiKey string) *CaptionClient {
	return &CaptionClient{baseURL: baseURL, apiKey: apiKey, client: http.DefaultClient}
}

// ExtractBarcode sends the photo URL to the captioning service and pulls
// the digit run out of the returned caption.
func (c *CaptionClient) ExtractBarcode(imageURL string) (string, error) {
	body, err := json.Marshal(map[string]string{"image": imageURL})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("caption service returned %d", resp.StatusCode)
	}

	var result struct {
		Caption string `json:"caption"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return ExtractDigits(result.Caption)
}

type UPCClient struct {
	baseURL string
	client  *http.Client
}

func NewUPCClient(baseURL string) *UPCClient {
	return &UPCClient{baseURL: baseURL, client: http.DefaultClient}
}

// Lookup resolves a barcode to a product.
func (c *UPCClient) Lookup(code string) (*Product, error) {
	resp, err := c.client.Get(c.baseURL + "?upc=" + url.QueryEscape(code))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upc service returned %d", resp.StatusCode)
	}

	var result struct {
		Items []Product `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if len(result.Items) == 0 {
		return nil, errors.New("no product for barcode")
	}
	return &result.Items[0], nil
}

// ExtractDigits returns the longest digit run in the caption, requiring at
// least the 8 digits of the shortest UPC variant.
func ExtractDigits(caption string) (string, error) {
	best := ""
	current := ""
	for _, r := range caption {
		if r >= '0' && r <= '9' {
			current += string(r)
			continue
		}
		if len(current) > len(best) {
			best = current
		}
		current = ""
	}
	if len(current) > len(best) {
		best = current
	}
	if len(best) < 8 {
		return "", ErrNoBarcode
	}
	return best, nil
}
