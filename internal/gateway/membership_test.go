package gateway_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cricket-booking/internal/data/entity"
	"cricket-booking/internal/gateway"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMembershipClient(t *testing.T, handler http.HandlerFunc) gateway.MembershipGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return gateway.NewMembershipClient(srv.URL, "sk_test", 0, zap.NewNop())
}

func TestMembershipCheck(t *testing.T) {
	userID := uuid.New()

	client := newMembershipClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/memberships/"+userID.String(), r.URL.Path)
		require.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		json.NewEncoder(w).Encode(entity.Membership{
			Active:          true,
			Type:            entity.MembershipPremium,
			DiscountPercent: 20,
			FreeHourPerWeek: true,
		})
	})

	m, err := client.Check(context.Background(), userID)
	require.NoError(t, err)
	assert.True(t, m.Active)
	assert.Equal(t, entity.MembershipPremium, m.Type)
	assert.Equal(t, 20, m.DiscountPercent)
}

func TestMembershipCheckNotFound(t *testing.T) {
	client := newMembershipClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	// No subscription on record is a normal answer.
	m, err := client.Check(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, entity.NoMembership, m)
}

func TestMembershipCheckServerError(t *testing.T) {
	client := newMembershipClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Check(context.Background(), uuid.New())
	assert.Error(t, err)
}
