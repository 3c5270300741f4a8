package session

import (
	"context"
	"strconv"
	"sync"

	"github.com/islemdzxd/delivery-management-platform/client/api"
)

// Storage is the key-value persistence behind the auth session. A
// browser front end plugs in localStorage; tests and CLIs use
// MemoryStorage.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

type MemoryStorage struct {
	mu   sync.Mutex
	data map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *MemoryStorage) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}

const (
	keyIsAuthenticated = "isAuthenticated"
	keyUsername        = "username"
	keyEmail           = "email"
	keyUserID          = "userId"
)

// AuthSession owns the login lifecycle and persists exactly the four
// keys the admin front end reads on startup.
type AuthSession struct {
	client  *api.Client
	storage Storage
}

func NewAuthSession(client *api.Client, storage Storage) *AuthSession {
	return &AuthSession{client: client, storage: storage}
}

func (s *AuthSession) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	resp, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.storage.Set(keyIsAuthenticated, "true")
	s.storage.Set(keyUsername, resp.User.Username)
	s.storage.Set(keyEmail, resp.User.Email)
	s.storage.Set(keyUserID, strconv.FormatUint(uint64(resp.User.ID), 10))
	return resp, nil
}

func (s *AuthSession) Logout() {
	s.client.Token = ""
	s.storage.Delete(keyIsAuthenticated)
	s.storage.Delete(keyUsername)
	s.storage.Delete(keyEmail)
	s.storage.Delete(keyUserID)
}

func (s *AuthSession) IsAuthenticated() bool {
	v, ok := s.storage.Get(keyIsAuthenticated)
	return ok && v == "true"
}

func (s *AuthSession) Username() string {
	v, _ := s.storage.Get(keyUsername)
	return v
}

func (s *AuthSession) Email() string {
	v, _ := s.storage.Get(keyEmail)
	return v
}

func (s *AuthSession) UserID() uint {
	v, _ := s.storage.Get(keyUserID)
	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
