package quota

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sachink160/multitool-client/internal/client/models"
)

func TestGate_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		gate    Gate
		allowed bool
	}{
		{"unknown", Gate{Feature: FeatureImages}, true},
		{"remaining one", Gate{Used: 2, Max: 3, Known: true}, true},
		{"remaining zero", Gate{Used: 3, Max: 3, Known: true}, false},
		{"over quota", Gate{Used: 5, Max: 3, Known: true}, false},
		{"zero plan", Gate{Used: 0, Max: 0, Known: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.allowed, tt.gate.Allowed())
			if tt.allowed {
				require.NoError(t, tt.gate.Check())
			} else {
				require.ErrorIs(t, tt.gate.Check(), ErrQuotaExhausted)
			}
		})
	}
}

func TestFromUsage(t *testing.T) {
	u := &models.UsageInfo{
		ChatsUsed: 10, MaxChats: 10,
		DynamicPromptDocumentsUploaded: 1, MaxDynamicPromptDocuments: 5,
	}
	require.False(t, FromUsage(u, FeatureChats).Allowed())

	g := FromUsage(u, FeaturePromptDocuments)
	require.True(t, g.Allowed())
	require.Equal(t, 4, g.Remaining())

	require.True(t, FromUsage(nil, FeatureChats).Allowed())
	require.False(t, FromUsage(u, Feature("bogus")).Known)
}

func TestFromImageInfo(t *testing.T) {
	zero := 0
	require.False(t, FromImageInfo(&models.ImageSubscriptionInfo{ImagesUsed: 1, MaxImages: 3, ImagesRemaining: &zero}).Allowed())
	require.True(t, FromImageInfo(&models.ImageSubscriptionInfo{ImagesUsed: 2, MaxImages: 3}).Allowed())
	require.True(t, FromImageInfo(nil).Allowed())
}
