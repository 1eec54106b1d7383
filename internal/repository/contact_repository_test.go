package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/apperrors"
	"contactbook/internal/model"
)

func strPtr(s string) *string { return &s }

func seedContact(t *testing.T, repo ContactRepository, ownerID uint64, name string) *model.Contact {
	t.Helper()
	contact := &model.Contact{OwnerID: ownerID, Name: name}
	require.NoError(t, repo.Create(context.Background(), contact))
	return contact
}

func TestContactRepository_ListPreservesCreationOrder(t *testing.T) {
	repo := NewContactRepository()
	ctx := context.Background()

	seedContact(t, repo, 1, "first")
	seedContact(t, repo, 2, "other tenant")
	seedContact(t, repo, 1, "second")
	seedContact(t, repo, 1, "third")

	contacts, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, contacts, 3)
	assert.Equal(t, "first", contacts[0].Name)
	assert.Equal(t, "second", contacts[1].Name)
	assert.Equal(t, "third", contacts[2].Name)
}

func TestContactRepository_IDsAreSequentialAcrossOwners(t *testing.T) {
	repo := NewContactRepository()

	a := seedContact(t, repo, 1, "a")
	b := seedContact(t, repo, 2, "b")
	c := seedContact(t, repo, 1, "c")

	assert.Equal(t, uint64(1), a.ID)
	assert.Equal(t, uint64(2), b.ID)
	assert.Equal(t, uint64(3), c.ID)
}

func TestContactRepository_ListNeverCrossesTenants(t *testing.T) {
	repo := NewContactRepository()
	ctx := context.Background()

	seedContact(t, repo, 1, "mine")

	contacts, err := repo.ListByOwner(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestContactRepository_UpdateMergesOnlySuppliedFields(t *testing.T) {
	repo := NewContactRepository()
	ctx := context.Background()

	contact := &model.Contact{OwnerID: 1, Name: "Bob", Phone: "111", Email: "bob@x.com"}
	require.NoError(t, repo.Create(ctx, contact))

	updated, err := repo.Update(ctx, 1, contact.ID, model.ContactUpdate{Phone: strPtr("555")})
	require.NoError(t, err)

	assert.Equal(t, "Bob", updated.Name)
	assert.Equal(t, "555", updated.Phone)
	assert.Equal(t, "bob@x.com", updated.Email)
	assert.Equal(t, contact.ID, updated.ID)
	assert.Equal(t, uint64(1), updated.OwnerID)
}

func TestContactRepository_UpdateByNonOwnerLooksLikeAbsence(t *testing.T) {
	repo := NewContactRepository()
	ctx := context.Background()

	contact := seedContact(t, repo, 1, "mine")

	_, err := repo.Update(ctx, 2, contact.ID, model.ContactUpdate{Name: strPtr("stolen")})
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)

	_, err = repo.Update(ctx, 1, 999, model.ContactUpdate{Name: strPtr("ghost")})
	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)

	// The owner still sees the untouched record.
	contacts, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "mine", contacts[0].Name)
}

func TestContactRepository_Delete(t *testing.T) {
	repo := NewContactRepository()
	ctx := context.Background()

	contact := seedContact(t, repo, 1, "mine")

	assert.ErrorIs(t, repo.Delete(ctx, 2, contact.ID), apperrors.ErrContactNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, 1, 999), apperrors.ErrContactNotFound)

	require.NoError(t, repo.Delete(ctx, 1, contact.ID))
	assert.ErrorIs(t, repo.Delete(ctx, 1, contact.ID), apperrors.ErrContactNotFound)

	contacts, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, contacts)
}
