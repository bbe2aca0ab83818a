// Package storage хранит небольшие скалярные значения между запусками игры.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
)

// HighScoreKey — ключ рекорда в хранилище
const HighScoreKey = "highScore"

// ErrNotFound возвращается, если ключ отсутствует.
var ErrNotFound = errors.New("key not found")

// Store — key-value хранилище целых чисел.
type Store interface {
	GetInt(key string) (int, error)
	SetInt(key string, value int) error
}

// FileStore хранит значения в JSON-объекте на диске.
// Файл создаётся при первой записи.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) GetInt(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		return 0, err
	}
	v, ok := values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return v, nil
}

func (s *FileStore) SetInt(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	values, err := s.read()
	if err != nil {
		// Повреждённый файл перезаписываем, а не блокируем сохранение
		log.Printf("storage: discarding unreadable %s: %v", s.path, err)
		values = make(map[string]int)
	}
	values[key] = value
	return s.write(values)
}

func (s *FileStore) read() (map[string]int, error) {
	values := make(map[string]int)
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return values, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	if len(data) == 0 {
		return values, nil
	}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to unmarshal store file: %w", err)
	}
	return values, nil
}

// write пишет во временный файл и переименовывает его, чтобы не оставить обрезанный JSON.
func (s *FileStore) write(values map[string]int) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal store: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".store-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close store file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// MemoryStore — хранилище в памяти, для тестов и режима без сохранения.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
	Writes int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

func (s *MemoryStore) GetInt(key string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return v, nil
}

func (s *MemoryStore) SetInt(key string, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	s.Writes++
	return nil
}

// LoadHighScore читает рекорд; отсутствующее или нечитаемое значение даёт 0.
func LoadHighScore(store Store) int {
	if store == nil {
		return 0
	}
	v, err := store.GetInt(HighScoreKey)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("storage: high score unavailable, starting from 0: %v", err)
		}
		return 0
	}
	if v < 0 {
		return 0
	}
	return v
}

// SaveHighScore сохраняет рекорд.
func SaveHighScore(store Store, value int) error {
	if store == nil {
		return nil
	}
	if err := store.SetInt(HighScoreKey, value); err != nil {
		return fmt.Errorf("failed to save high score: %w", err)
	}
	return nil
}
