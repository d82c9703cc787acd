package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"tarkov_trader/internal/domain"
	"tarkov_trader/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("connection refused")
	err := fmt.Errorf("store.Reload: %w",
		domain.WrapError(cause, errcodes.ProviderUnavailable, "Failed to load Tarkov market data"))

	rq.True(domain.IsAppError(err))
	rq.ErrorIs(err, cause)
	rq.EqualError(err, "store.Reload: Failed to load Tarkov market data: connection refused")

	code, ok := domain.GetCode(err)
	rq.True(ok)
	rq.Equal(errcodes.ProviderUnavailable, code)

	_, ok = domain.GetCode(cause)
	rq.False(ok)

	rq.EqualError(domain.NewError(errcodes.ItemNotFound, "item not found"), "item not found")
}
