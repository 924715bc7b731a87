//go:build unit

package transaction_test

import (
	"testing"

	"gin-booking/internal/domain/identity"
	"gin-booking/internal/domain/transaction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPending(t *testing.T) {
	customer := &identity.Identity{UID: "u2", Email: "lan@example.com"}

	tests := []struct {
		name      string
		order     transaction.Order
		errIs     error
		wantName  string
		wantEmail string
	}{
		{
			name:      "profile values win",
			order:     transaction.Order{Customer: customer, ProfileName: "Lan", ProfileEmail: "lan@shop.vn", ServiceID: "s1"},
			wantName:  "Lan",
			wantEmail: "lan@shop.vn",
		},
		{
			name:      "blank profile falls back",
			order:     transaction.Order{Customer: customer, ProfileName: "  ", ServiceID: "s1"},
			wantName:  transaction.FallbackUserName,
			wantEmail: "lan@example.com",
		},
		{
			name:      "no email anywhere",
			order:     transaction.Order{Customer: &identity.Identity{UID: "u3"}, ServiceID: "s1"},
			wantName:  transaction.FallbackUserName,
			wantEmail: transaction.FallbackUserEmail,
		},
		{
			name:  "anonymous",
			order: transaction.Order{ServiceID: "s1"},
			errIs: transaction.ErrCustomerRequired,
		},
		{
			name:  "missing service",
			order: transaction.Order{Customer: customer},
			errIs: transaction.ErrServiceRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx, err := transaction.NewPending(tt.order)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, transaction.StatusPending, tx.Status())
			assert.Equal(t, tt.wantName, tx.UserName())
			assert.Equal(t, tt.wantEmail, tx.UserEmail())
			assert.Nil(t, tx.CreatedAt())
		})
	}
}

func TestNewDecision(t *testing.T) {
	for _, s := range []string{"accepted", "rejected"} {
		st, err := transaction.NewDecision(s)
		require.NoError(t, err)
		assert.Equal(t, s, st.String())
	}
	for _, s := range []string{"pending", "", "ACCEPTED", "done"} {
		_, err := transaction.NewDecision(s)
		assert.ErrorIs(t, err, transaction.ErrInvalidStatus, s)
	}
}
