package cli

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/dungeonkeeper/internal/client/token/tokentest"
	"github.com/dmitrijs2005/dungeonkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatus_FollowsSession(t *testing.T) {
	h := newHarness(t, "", nil)
	assert.Equal(t, "", h.app.getStatus())
	assert.False(t, h.app.isLoggedIn())

	signIn(t, h, "alice", "u-1")
	assert.Equal(t, "(alice)", h.app.getStatus())
	assert.True(t, h.app.isLoggedIn())

	require.NoError(t, h.store.Logout(context.Background()))
	assert.Equal(t, "", h.app.getStatus())
}

func TestGetStatus_RestoredOnStartup(t *testing.T) {
	cred := tokentest.Mint(t, "bob", 3, time.Now().Add(time.Hour))
	h := newHarness(t, "", func(st *memStorage) {
		st.values[common.CredentialRecordKey] = []byte(cred)
	})

	assert.Equal(t, "(bob)", h.app.getStatus())
	assert.True(t, h.app.isLoggedIn())
}

func TestGetStatus_ExpiredRecordDiscarded(t *testing.T) {
	cred := tokentest.Mint(t, "bob", 3, time.Now().Add(-time.Minute))
	h := newHarness(t, "", func(st *memStorage) {
		st.values[common.CredentialRecordKey] = []byte(cred)
	})

	assert.Equal(t, "", h.app.getStatus())
	assert.Empty(t, h.storage.values)
}

func TestClose_KeepsRecord(t *testing.T) {
	h := newHarness(t, "", nil)
	signIn(t, h, "alice", "u-1")

	require.NoError(t, h.app.Close())
	assert.False(t, h.store.IsActive())
	assert.NotEmpty(t, h.storage.values[common.CredentialRecordKey])
}
