package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_New_KindMatchableWithErrorsIs(t *testing.T) {
	err := Conflict("user is already a member of this workspace")

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "user is already a member of this workspace", err.Error())
}

func Test_New_KindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("failed to accept invitation: %w", Expired("invitation has expired"))

	assert.True(t, errors.Is(err, ErrExpired))
}

func Test_Newf_FormatsMessage(t *testing.T) {
	err := Newf(ErrNotFound, "workspace %s not found", "ws-1")

	assert.True(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "workspace ws-1 not found", err.Error())
}
