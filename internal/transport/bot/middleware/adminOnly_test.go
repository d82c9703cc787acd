package middleware_test

import (
	"testing"

	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/require"

	"tarkov_trader/internal/transport/bot/middleware"
)

func TestIsAdmin(t *testing.T) {
	const adminID = 42

	testCases := []struct {
		name    string
		update  telego.Update
		adminID int64
		want    bool
	}{
		{
			name:    "Admin message",
			update:  telego.Update{Message: &telego.Message{From: &telego.User{ID: adminID}}},
			adminID: adminID,
			want:    true,
		},
		{
			name:    "Other user message",
			update:  telego.Update{Message: &telego.Message{From: &telego.User{ID: 7}}},
			adminID: adminID,
		},
		{
			name:    "Message without sender",
			update:  telego.Update{Message: &telego.Message{}},
			adminID: adminID,
		},
		{
			name:    "Admin callback",
			update:  telego.Update{CallbackQuery: &telego.CallbackQuery{From: telego.User{ID: adminID}}},
			adminID: adminID,
			want:    true,
		},
		{
			name:    "Admin not configured",
			update:  telego.Update{Message: &telego.Message{From: &telego.User{ID: 0}}},
			adminID: 0,
		},
		{
			name:    "Empty update",
			adminID: adminID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, middleware.IsAdmin(tc.update, tc.adminID))
		})
	}
}
