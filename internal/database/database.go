package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"posterforge/internal/config"
)

// Store - хранилище коллекций в виде цельных JSON-файлов.
// Каждая коллекция защищена собственным мьютексом: все циклы
// чтение-изменение-запись сериализуются (один писатель на коллекцию).
type Store struct {
	dir     string
	users   *Collection
	posters *Collection
}

type Collection struct {
	mu   sync.Mutex
	path string
	seed any
}

func Connect(cfg *config.Config) (*Store, error) {
	dir := cfg.Store.DataDir

	store := &Store{
		dir: dir,
		users: &Collection{
			path: filepath.Join(dir, "users.json"),
			seed: map[string]any{"users": []any{}},
		},
		posters: &Collection{
			path: filepath.Join(dir, "posters.json"),
			seed: map[string]any{"posters": []any{}},
		},
	}

	if err := store.init(); err != nil {
		return nil, err
	}

	if err := store.HealthCheck(); err != nil {
		return nil, err
	}

	logrus.Infof("Хранилище инициализировано: %s", dir)
	return store, nil
}

// init создает каталог и пустые коллекции, если их нет. Идемпотентно.
func (s *Store) init() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("не удалось создать каталог хранилища: %w", err)
	}

	for _, c := range []*Collection{s.users, s.posters} {
		if _, err := os.Stat(c.path); os.IsNotExist(err) {
			if err := c.save(c.seed); err != nil {
				return fmt.Errorf("не удалось создать коллекцию %s: %w", c.path, err)
			}
		}
	}

	return nil
}

func (s *Store) Users() *Collection {
	return s.users
}

func (s *Store) Posters() *Collection {
	return s.posters
}

// HealthCheck перечитывает обе коллекции целиком
func (s *Store) HealthCheck() error {
	for _, c := range []*Collection{s.users, s.posters} {
		var doc map[string]json.RawMessage
		if err := c.View(&doc); err != nil {
			return err
		}
	}
	return nil
}

// View читает коллекцию под блокировкой
func (c *Collection) View(doc any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(doc)
}

// Update выполняет цикл чтение-изменение-запись под блокировкой коллекции.
// fn изменяет doc на месте; при ошибке fn файл не перезаписывается.
func (c *Collection) Update(doc any, fn func() error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.load(doc); err != nil {
		return err
	}

	if err := fn(); err != nil {
		return err
	}

	return c.save(doc)
}

func (c *Collection) load(doc any) error {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return fmt.Errorf("ошибка чтения коллекции %s: %w", c.path, err)
	}

	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("коллекция %s повреждена: %w", c.path, err)
	}

	return nil
}

// save пишет во временный файл и переименовывает его на место,
// чтобы сбой посреди записи не оставил усеченный JSON
func (c *Collection) save(doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("ошибка сериализации коллекции: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+"-*")
	if err != nil {
		return fmt.Errorf("ошибка создания временного файла: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("ошибка записи коллекции: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("ошибка записи коллекции: %w", err)
	}

	if err := os.Rename(tmp.Name(), c.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("ошибка сохранения коллекции: %w", err)
	}

	return nil
}
