package client

import (
	"sync"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"
)

// Status はセッションの状態。
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Session はログイン中ユーザーを保持する単一スロット。
// 書き込みは必ずSet/Clear/SetStatus経由。購読者には変更の都度通知する。
type Session struct {
	mu     sync.RWMutex
	data   *usecase.UserDTO
	status Status
	subs   []func(data *usecase.UserDTO, status Status)
}

func NewSession() *Session {
	return &Session{status: StatusIdle}
}

// Set はユーザーを入れ替えてstatus=successにする。
func (s *Session) Set(user *usecase.UserDTO) {
	s.mu.Lock()
	s.data = user
	s.status = StatusSuccess
	subs := s.snapshotSubs()
	data, status := s.data, s.status
	s.mu.Unlock()

	notify(subs, data, status)
}

// Clear はログアウト。data=nil, status=idle。
func (s *Session) Clear() {
	s.mu.Lock()
	s.data = nil
	s.status = StatusIdle
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, nil, StatusIdle)
}

// SetStatus はstatusだけを書き換える。空ならidle扱い。
func (s *Session) SetStatus(status Status) {
	if status == "" {
		status = StatusIdle
	}

	s.mu.Lock()
	s.status = status
	subs := s.snapshotSubs()
	data := s.data
	s.mu.Unlock()

	notify(subs, data, status)
}

// Get は現在のユーザーと状態を返す。
func (s *Session) Get() (*usecase.UserDTO, Status) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data, s.status
}

// Subscribe は変更通知を登録する。解除関数を返す。
func (s *Session) Subscribe(fn func(data *usecase.UserDTO, status Status)) func() {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	idx := len(s.subs) - 1
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if idx < len(s.subs) {
			s.subs[idx] = nil
		}
	}
}

func (s *Session) snapshotSubs() []func(data *usecase.UserDTO, status Status) {
	out := make([]func(data *usecase.UserDTO, status Status), 0, len(s.subs))
	for _, fn := range s.subs {
		if fn != nil {
			out = append(out, fn)
		}
	}
	return out
}

// 通知はロックの外で行う（コールバック内からのGet/Setを許すため）
func notify(subs []func(data *usecase.UserDTO, status Status), data *usecase.UserDTO, status Status) {
	for _, fn := range subs {
		fn(data, status)
	}
}
