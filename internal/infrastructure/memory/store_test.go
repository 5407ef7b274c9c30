package memory_test

import (
	"context"
	"testing"

	"github.com/nirmalvora/padosee-server/internal/domain"
	"github.com/nirmalvora/padosee-server/internal/infrastructure/memory"
	"github.com/nirmalvora/padosee-server/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ repository.UserRepository    = (*memory.UserRepository)(nil)
	_ repository.RequestRepository = (*memory.RequestRepository)(nil)
)

func TestUsers_EmailIsUniqueCaseInsensitive(t *testing.T) {
	users := memory.NewStore().Users()
	ctx := context.Background()

	_, err := users.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "d1"})
	require.NoError(t, err)

	_, err = users.Create(ctx, &domain.User{Email: "A@X.com", PasswordHash: "d2"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	found, err := users.FindByEmail(ctx, "A@x.COM")
	require.NoError(t, err)
	assert.Equal(t, "d1", found.PasswordHash)
}

func TestUsers_UpdatePassword(t *testing.T) {
	users := memory.NewStore().Users()
	ctx := context.Background()

	u, err := users.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "old"})
	require.NoError(t, err)

	require.NoError(t, users.UpdatePassword(ctx, u.ID, "new"))
	require.NoError(t, users.UpdatePassword(ctx, u.ID, "new"))

	got, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "new", got.PasswordHash)

	assert.ErrorIs(t, users.UpdatePassword(ctx, "00000000-0000-0000-0000-000000000000", "x"), domain.ErrUserNotFound)
	assert.ErrorIs(t, users.UpdatePassword(ctx, "not-a-uuid", "x"), domain.ErrUserNotFound)
}

func TestUsers_UpdateLeavesDigestAlone(t *testing.T) {
	users := memory.NewStore().Users()
	ctx := context.Background()

	u, err := users.Create(ctx, &domain.User{Email: "a@x.com", PasswordHash: "d1"})
	require.NoError(t, err)

	_, err = users.Update(ctx, &domain.User{ID: u.ID, Email: "b@x.com", FirstName: "B"})
	require.NoError(t, err)

	got, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "d1", got.PasswordHash)
	assert.Equal(t, "b@x.com", got.Email)
}

func TestRequests_Constraints(t *testing.T) {
	store := memory.NewStore()
	users, requests := store.Users(), store.Requests()
	ctx := context.Background()

	a, err := users.Create(ctx, &domain.User{Email: "a@x.com"})
	require.NoError(t, err)
	b, err := users.Create(ctx, &domain.User{Email: "b@x.com"})
	require.NoError(t, err)

	created, err := requests.Create(ctx, &domain.Request{SenderID: a.ID, ReceiverID: b.ID, Status: domain.RequestPending})
	require.NoError(t, err)

	_, err = requests.Create(ctx, &domain.Request{SenderID: a.ID, ReceiverID: b.ID, Status: domain.RequestPending})
	assert.ErrorIs(t, err, domain.ErrDuplicateRequest)

	_, err = requests.Create(ctx, &domain.Request{SenderID: a.ID, ReceiverID: "00000000-0000-0000-0000-000000000000"})
	assert.ErrorIs(t, err, domain.ErrUnknownParticipant)

	sent, err := requests.ListBySender(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, created.ID, sent[0].ID)

	received, err := requests.ListByReceiver(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, received)

	require.NoError(t, users.Delete(ctx, b.ID))
	_, err = requests.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}
