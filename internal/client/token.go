package client

import "sync"

// 旧バージョンのフロントが使っていたキーとの互換のため、
// トークンは2つのキーのどちらにも入っている可能性がある。
const (
	TokenKey       = "access_token"
	LegacyTokenKey = "token"
)

// KV はトークン保存先の抽象。
type KV interface {
	Get(key string) string
	Set(key, value string)
	Delete(key string)
}

// MemoryKV はプロセス内のKV。テストとCLI用途向け。
type MemoryKV struct {
	mu sync.RWMutex
	m  map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{m: make(map[string]string)}
}

func (s *MemoryKV) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m[key]
}

func (s *MemoryKV) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[key] = value
}

func (s *MemoryKV) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
}

// BearerToken は新旧どちらかのキーからトークンを読む。先に見つかった方を使う。
func BearerToken(kv KV) string {
	if tok := kv.Get(TokenKey); tok != "" {
		return tok
	}
	return kv.Get(LegacyTokenKey)
}

// SaveToken は新キーに保存し、旧キーは消す。
func SaveToken(kv KV, token string) {
	kv.Set(TokenKey, token)
	kv.Delete(LegacyTokenKey)
}

// ClearToken は両方のキーを消す。
func ClearToken(kv KV) {
	kv.Delete(TokenKey)
	kv.Delete(LegacyTokenKey)
}
