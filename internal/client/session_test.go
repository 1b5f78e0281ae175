package client_test

import (
	"testing"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/client"
	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestSession_InitialStateIsIdle(t *testing.T) {
	s := client.NewSession()

	data, status := s.Get()
	assert.Nil(t, data)
	assert.Equal(t, client.StatusIdle, status)
}

func TestSession_SetReplacesDataAndMarksSuccess(t *testing.T) {
	s := client.NewSession()
	s.SetStatus(client.StatusLoading)

	s.Set(&usecase.UserDTO{ID: 1, Name: "Alice"})

	data, status := s.Get()
	assert.Equal(t, int64(1), data.ID)
	assert.Equal(t, client.StatusSuccess, status)
}

func TestSession_ClearResetsToIdle(t *testing.T) {
	s := client.NewSession()
	s.Set(&usecase.UserDTO{ID: 1})

	s.Clear()

	data, status := s.Get()
	assert.Nil(t, data)
	assert.Equal(t, client.StatusIdle, status)
}

// 空のstatusはidle扱い
func TestSession_SetStatusEmptyDefaultsToIdle(t *testing.T) {
	s := client.NewSession()
	s.SetStatus("")

	_, status := s.Get()
	assert.Equal(t, client.StatusIdle, status)
}

func TestSession_SubscribeReceivesEveryChange(t *testing.T) {
	s := client.NewSession()

	var statuses []client.Status
	unsub := s.Subscribe(func(data *usecase.UserDTO, status client.Status) {
		statuses = append(statuses, status)
	})

	s.SetStatus(client.StatusLoading)
	s.Set(&usecase.UserDTO{ID: 1})
	s.Clear()

	assert.Equal(t, []client.Status{client.StatusLoading, client.StatusSuccess, client.StatusIdle}, statuses)

	//解除後は届かない
	unsub()
	s.SetStatus(client.StatusError)
	assert.Len(t, statuses, 3)
}
