package persistence_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edcd-tools/outfitter-go/internal/adapters/persistence"
	"github.com/edcd-tools/outfitter-go/test/helpers"
)

func TestBuildSaveAndFind(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormBuildRepository(db)
	ctx := context.Background()

	err := repo.Save(ctx, "asp", "Miner", "0----------posAB.AAAA.BBBB")
	require.NoError(t, err)

	code, err := repo.Find(ctx, "asp", "Miner")
	require.NoError(t, err)
	assert.Equal(t, "0----------posAB.AAAA.BBBB", code)
}

func TestBuildSaveIsUpsert(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormBuildRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "asp", "Miner", "first"))
	require.NoError(t, repo.Save(ctx, "asp", "Miner", "second"))

	code, err := repo.Find(ctx, "asp", "Miner")
	require.NoError(t, err)
	assert.Equal(t, "second", code)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all["asp"], 1)
}

func TestBuildFindMissing(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormBuildRepository(db)

	_, err := repo.Find(context.Background(), "asp", "Ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "build not found: asp/Ghost")
}

func TestBuildListAllGroupsByShip(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormBuildRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "asp", "Miner", "code-a"))
	require.NoError(t, repo.Save(ctx, "asp", "Scout", "code-b"))
	require.NoError(t, repo.Save(ctx, "anaconda", "Hauler", "code-c"))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, map[string]string{"Miner": "code-a", "Scout": "code-b"}, all["asp"])
	assert.Equal(t, map[string]string{"Hauler": "code-c"}, all["anaconda"])
}

func TestBuildDelete(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormBuildRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "asp", "Miner", "code"))
	require.NoError(t, repo.Delete(ctx, "asp", "Miner"))

	_, err := repo.Find(ctx, "asp", "Miner")
	assert.Error(t, err)

	// Deleting an absent build is not an error
	assert.NoError(t, repo.Delete(ctx, "asp", "Miner"))
}

// Same build name on two different hulls must not collide: the key is
// the (ship id, name) pair.
func TestBuildNameScopedToShip(t *testing.T) {
	db := helpers.NewTestDB(t)
	repo := persistence.NewGormBuildRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "asp", "Miner", "asp-code"))
	require.NoError(t, repo.Save(ctx, "anaconda", "Miner", "anaconda-code"))

	aspCode, err := repo.Find(ctx, "asp", "Miner")
	require.NoError(t, err)
	condaCode, err := repo.Find(ctx, "anaconda", "Miner")
	require.NoError(t, err)
	assert.Equal(t, "asp-code", aspCode)
	assert.Equal(t, "anaconda-code", condaCode)
}
