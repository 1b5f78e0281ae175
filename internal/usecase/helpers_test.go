package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertErrContains(t *testing.T, err error, substr string) {
	t.Helper()
	assert.Error(t, err)
	if err != nil {
		assert.Contains(t, err.Error(), substr)
	}
}
