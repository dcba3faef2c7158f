package policy_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ideashelf/backend/internal/apperr"
	"github.com/ideashelf/backend/internal/policy"
)

func TestCanMutate(t *testing.T) {
	testCases := []struct {
		name         string
		actor        *policy.Actor
		ownerID      int64
		expectedKind apperr.Kind
	}{
		{
			name:         "Anonymous actor is rejected with authentication required",
			actor:        nil,
			ownerID:      1,
			expectedKind: apperr.KindAuthenticationRequired,
		},
		{
			name:    "Owner may mutate",
			actor:   &policy.Actor{ID: 1},
			ownerID: 1,
		},
		{
			name:    "Admin may mutate any idea",
			actor:   &policy.Actor{ID: 99, IsAdmin: true},
			ownerID: 1,
		},
		{
			name:    "Admin owner may mutate",
			actor:   &policy.Actor{ID: 1, IsAdmin: true},
			ownerID: 1,
		},
		{
			name:         "Authenticated non-owner non-admin is forbidden",
			actor:        &policy.Actor{ID: 2},
			ownerID:      1,
			expectedKind: apperr.KindAuthorizationDenied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := policy.CanMutate(tc.actor, tc.ownerID)
			if tc.expectedKind == apperr.KindUnknown {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Equal(t, tc.expectedKind, apperr.KindOf(err))
			}
		})
	}
}
