package e4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransactionTypeFor(t *testing.T) {
	tests := []struct {
		action   Action
		expected TransactionType
	}{
		{ActionPurchase, "00"},
		{ActionAuthorize, "01"},
		{ActionCapture, "02"},
		{ActionForcedPost, "03"},
		{ActionRefund, "04"},
		{ActionAuthorizeOnly, "05"},
		{ActionPaypalOrder, "07"},
		{ActionVoid, "13"},
		{ActionTaggedCapture, "32"},
		{ActionTaggedVoid, "33"},
		{ActionTaggedRefund, "34"},
		{ActionCashout, "83"},
		{ActionActivation, "85"},
		{ActionBalanceInquiry, "86"},
		{ActionReload, "88"},
		{ActionDeactivation, "89"},
	}

	for _, tt := range tests {
		t.Run(string(tt.action), func(t *testing.T) {
			assert.Equal(t, tt.expected, TransactionTypeFor(tt.action))
		})
	}
}

func TestTransactionTypeFor_UnregisteredPanics(t *testing.T) {
	assert.PanicsWithValue(t, `e4: no transaction type registered for action "settle"`, func() {
		TransactionTypeFor(Action("settle"))
	})
}
