package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"cricket-booking/internal/data/entity"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type membershipClient struct {
	baseURL   string
	secretKey string
	client    *http.Client
	log       *zap.Logger
}

// NewMembershipClient builds the HTTP client for the billing service's
// membership lookup endpoint.
func NewMembershipClient(baseURL, secretKey string, timeout time.Duration, log *zap.Logger) MembershipGateway {
	if timeout == 0 {
		timeout = 5 * time.Second
	}
	return &membershipClient{
		baseURL:   baseURL,
		secretKey: secretKey,
		client:    &http.Client{Timeout: timeout},
		log:       log.With(zap.String("gateway", "membership")),
	}
}

func (c *membershipClient) Check(ctx context.Context, userID uuid.UUID) (entity.Membership, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/v1/memberships/"+userID.String(), nil)
	if err != nil {
		return entity.NoMembership, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return entity.NoMembership, fmt.Errorf("check membership for %s: %w", userID.String(), err)
	}
	defer resp.Body.Close()

	// No subscription on record is a normal answer, not an error.
	if resp.StatusCode == http.StatusNotFound {
		return entity.NoMembership, nil
	}
	if resp.StatusCode >= 400 {
		return entity.NoMembership, fmt.Errorf("membership lookup for %s returned %d", userID.String(), resp.StatusCode)
	}

	var membership entity.Membership
	if err := json.NewDecoder(resp.Body).Decode(&membership); err != nil {
		return entity.NoMembership, fmt.Errorf("decode membership response: %w", err)
	}

	c.log.Debug("Membership resolved",
		zap.String("user_id", userID.String()),
		zap.Bool("active", membership.Active),
		zap.String("type", string(membership.Type)),
	)
	return membership, nil
}
