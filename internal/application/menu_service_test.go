package application

import (
	"testing"

	"github.com/eatwithchiso/service-booking/internal/common/domain"
	"github.com/eatwithchiso/service-booking/internal/domain/menu"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMenuService(t *testing.T) {
	svc := NewMenuService(menu.DefaultCatalog(), zap.NewNop())

	m, err := svc.GetMenu("")
	require.NoError(t, err)
	require.NotEmpty(t, m)
	assert.Equal(t, "Pancakes", m[0].Name)

	_, err = svc.GetMenu("brunch")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.ErrValidation))
	assert.Equal(t, "Invalid menu type", err.Error())

	assert.Len(t, svc.Periods(), 3)
}
