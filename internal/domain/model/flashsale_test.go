package model_test

import (
	"testing"
	"time"

	"github.com/tanthien12/BookStore-ECommerce-App-sub002/internal/domain/model"

	"github.com/stretchr/testify/assert"
)

func TestFlashsaleCampaign_IsRunning(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	c := model.FlashsaleCampaign{StartTime: start, EndTime: end, IsActive: true}

	assert.False(t, c.IsRunning(start.Add(-time.Minute)))
	assert.True(t, c.IsRunning(start)) //開始時刻ちょうどは開催中
	assert.True(t, c.IsRunning(start.Add(time.Hour)))
	assert.False(t, c.IsRunning(end)) //終了時刻ちょうどは終了扱い

	c.IsActive = false
	assert.False(t, c.IsRunning(start.Add(time.Hour)))
}
