package store

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/lucy1234dev/server/internal/pkg/pkgfile"
	"github.com/lucy1234dev/server/internal/product/entity"
)

const productsFile = "products.json"

// FileStore keeps the catalog as a JSON array in insertion order.
type FileStore struct {
	mu   sync.Mutex
	path string
}

type productRecord struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Categories string  `json:"categories"`
	Page       string  `json:"page"`
	Image      string  `json:"image"`
}

func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, productsFile)}
}

func (s *FileStore) Append(ctx context.Context, product entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	records = append(records, productRecord{
		ID:         product.ID,
		Name:       product.Name,
		Price:      product.Price,
		Categories: product.Categories,
		Page:       product.Page,
		Image:      product.Image,
	})

	return pkgfile.SaveJSON(s.path, records)
}

func (s *FileStore) List(ctx context.Context) ([]entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}

	products := make([]entity.Product, 0, len(records))
	for _, r := range records {
		products = append(products, entity.Product{
			ID:         r.ID,
			Name:       r.Name,
			Price:      r.Price,
			Categories: r.Categories,
			Page:       r.Page,
			Image:      r.Image,
		})
	}

	return products, nil
}

func (s *FileStore) load() ([]productRecord, error) {
	var records []productRecord
	ok, err := pkgfile.LoadJSON(s.path, &records)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return records, nil
}
