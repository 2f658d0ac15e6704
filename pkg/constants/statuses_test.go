package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "gearguard/pkg/errors"
)

func TestParseRequestStatus(t *testing.T) {
	for _, code := range []string{"NEW", "IN_PROGRESS", "REPAIRED", "SCRAP"} {
		parsed, err := ParseRequestStatus(code)
		require.NoError(t, err)
		assert.Equal(t, code, parsed)
	}

	for _, code := range []string{"", "new", "DONE", "SCRAPPED", "IN PROGRESS"} {
		_, err := ParseRequestStatus(code)
		assert.ErrorIs(t, err, apperrors.ErrBadRequest, "код %q должен отклоняться", code)
	}
}

func TestRequestStatusName(t *testing.T) {
	assert.Equal(t, "In Progress", RequestStatusName(RequestStatusInProgress))
	// Неизвестный код возвращается как есть.
	assert.Equal(t, "WHATEVER", RequestStatusName("WHATEVER"))
}
