package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"knightspantry/models"
)

// Store reads and writes the static product catalog JSON file. The file is
// what the category screens browse; approved donations get mirrored into
// it keyed by donation ID, so repeating a sync never duplicates an entry.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

// Load returns the catalog. A missing file is an empty catalog, not an
// error.
func (s *Store) Load() ([]models.CatalogProduct, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Filter returns the catalog entries of one category, or everything when
// category is empty.
func (s *Store) Filter(category string) ([]models.CatalogProduct, error) {
	products, err := s.Load()
	if err != nil {
		return nil, err
	}
	if category == "" {
		return products, nil
	}

	filtered := []models.CatalogProduct{}
	for _, p := range products {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

// SyncApproved appends an approved donation to the catalog unless an entry
// with the same donation ID is already there.
func (s *Store) SyncApproved(product models.CatalogProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return err
	}
	for _, p := range products {
		if p.DonationID != "" && p.DonationID == product.DonationID {
			return nil
		}
	}
	return s.save(append(products, product))
}

// Reconcile makes sure every given approved donation is present. It is the
// retryable repair step for syncs that failed at approval time.
func (s *Store) Reconcile(approved []models.CatalogProduct) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.load()
	if err != nil {
		return err
	}

	known := map[string]bool{}
	for _, p := range products {
		if p.DonationID != "" {
			known[p.DonationID] = true
		}
	}

	missing := false
	for _, p := range approved {
		if !known[p.DonationID] {
			products = append(products, p)
			missing = true
		}
	}
	if !missing {
		return nil
	}
	return s.save(products)
}

func (s *Store) load() ([]models.CatalogProduct, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []models.CatalogProduct{}, nil
	}
	if err != nil {
		return nil, err
	}

	var products []models.CatalogProduct
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// save writes via a temp file and rename so readers never see a half
// written catalog.
func (s *Store) save(products []models.CatalogProduct) error {
	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), "catalog-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
