package shared_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/latehour/loahelper/pkg/lostark/shared"
	"github.com/stretchr/testify/assert"
)

func TestMessageForTaxonomy(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{shared.ErrUpstreamUnavailable, shared.MsgFetchFailed},
		{shared.ErrNoData, shared.MsgNoData},
		{shared.ErrMalformedData, shared.MsgProcessFailed},
		{shared.ErrStoreFailure, shared.MsgStoreFailed},
		{errors.New("something else"), shared.MsgFetchFailed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, shared.MessageFor(tt.err))
	}
}

func TestMessageForWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("%w: status 503", shared.ErrUpstreamUnavailable)
	assert.Equal(t, shared.MsgFetchFailed, shared.MessageFor(wrapped))

	doubly := fmt.Errorf("sync failed: %w", fmt.Errorf("%w: tx aborted", shared.ErrStoreFailure))
	assert.Equal(t, shared.MsgStoreFailed, shared.MessageFor(doubly))
}
