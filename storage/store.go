// Package storage menyimpan seluruh koleksi data aplikasi sebagai dokumen
// JSON utuh di satu direktori kerja. Setiap siklus baca-ubah-tulis
// diserialisasikan lewat satu mutex; penulis terakhir menang.
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
)

// Nama dokumen yang dikenal aplikasi.
const (
	DocUsers    = "users"
	DocProducts = "products"
	DocOrders   = "orders"
	DocLogs     = "logs"
)

// Store adalah titik akses tunggal ke dokumen JSON bernama.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore menyiapkan direktori data dan mengembalikan Store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// Load membaca dokumen bernama ke dest. Dokumen yang tidak ada atau isinya
// rusak diperlakukan sebagai koleksi kosong; Load tidak pernah gagal.
func (s *Store) Load(name string, dest any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(name, dest)
}

func (s *Store) load(name string, dest any) {
	raw, err := os.ReadFile(s.path(name))
	if err != nil {
		return
	}
	_ = json.Unmarshal(raw, dest)
}

// Save menulis ulang seluruh dokumen bernama.
func (s *Store) Save(name string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(name, v)
}

func (s *Store) save(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path(name), raw, 0644)
}

// Update menjalankan satu siklus baca-ubah-tulis di bawah kunci store.
// Isi dokumen saat ini dibaca ke dest, lalu fn mengembalikan nilai yang
// akan disimpan. fn yang mengembalikan error membatalkan penulisan.
func (s *Store) Update(name string, dest any, fn func() (any, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.load(name, dest)
	v, err := fn()
	if err != nil {
		return err
	}
	return s.save(name, v)
}

// Exists melaporkan apakah dokumen bernama sudah pernah ditulis.
func (s *Store) Exists(name string) bool {
	_, err := os.Stat(s.path(name))
	return err == nil
}
