package checks

import (
	"context"
	"errors"
	"testing"

	"armory/core/storage/mocks"
	"armory/feature/equipment"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func prefix(key string) interface{} {
	return mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == key
	})
}

func TestCheckAssets(t *testing.T) {
	ctx := context.Background()
	catalog := equipment.DefaultCatalog()

	t.Run("Reports Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)

		sword := "assets/Ultimate RPG Items Bundle-glb/Sword.glb"
		shield := "assets/Ultimate RPG Items Bundle-glb/Shield Round.glb"
		mockClient.On("ListObjects", mock.Anything, "assets", prefix(sword)).
			Return(mocks.Keys(sword))
		mockClient.On("ListObjects", mock.Anything, "assets", prefix(shield)).
			Return(mocks.Keys(shield))
		// Everything else is absent, or only a longer key shares the prefix.
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).
			Return(mocks.Keys("assets/Ultimate RPG Items Bundle-glb/Knife.glb.bak"))

		report, err := CheckAssets(ctx, mockClient, "assets", catalog)
		require.NoError(t, err)
		assert.Equal(t, 5, report.Total)
		assert.Equal(t, 2, report.Found)
		assert.ElementsMatch(t, []string{
			"/assets/Ultimate RPG Items Bundle-glb/Claymore.glb",
			"/assets/Ultimate RPG Items Bundle-glb/Spear.glb",
			"/assets/Ultimate RPG Items Bundle-glb/Knife.glb",
		}, report.Missing)
	})

	t.Run("Missing Bucket", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(false, nil)

		_, err := CheckAssets(ctx, mockClient, "assets", catalog)
		assert.Error(t, err)
	})

	t.Run("Listing Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "assets").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "assets", mock.Anything).
			Return(mocks.Listing(minio.ObjectInfo{Err: errors.New("timeout")}))

		_, err := CheckAssets(ctx, mockClient, "assets", catalog)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "timeout")
	})
}
