package entity_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llOrtegall/backend-app-full-stack/internal/domain/entity"
)

func TestKindOf(t *testing.T) {
	err := entity.NewUserAlreadyExists("ana@example.com")
	assert.Equal(t, entity.KindUserAlreadyExists, entity.KindOf(err))
	assert.Contains(t, err.Error(), "ana@example.com")

	assert.Equal(t, entity.ErrorKind(""), entity.KindOf(errors.New("plain infra error")))
	assert.Equal(t, entity.ErrorKind(""), entity.KindOf(nil))
}

func TestKindOf_SeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("lookup: %w", entity.NewProductNotFound("SKU-1"))
	assert.True(t, entity.IsKind(err, entity.KindProductNotFound))
	assert.False(t, entity.IsKind(err, entity.KindUserNotFound))
}
