package gallery_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/photolog-dev/photolog-backend/internal/adapter/repository"
	"github.com/photolog-dev/photolog-backend/internal/domain"
	"github.com/photolog-dev/photolog-backend/internal/domain/entity"
	"github.com/photolog-dev/photolog-backend/internal/mocks"
	"github.com/photolog-dev/photolog-backend/internal/pkg/pagination"
	"github.com/photolog-dev/photolog-backend/internal/usecase/gallery"
)

func TestService_ListPublic(t *testing.T) {
	t.Run("rejects non-positive limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		_, err := svc.ListPublic(context.Background(), 0, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidLimit)

		_, err = svc.ListPublic(context.Background(), 0, -3)
		assert.ErrorIs(t, err, domain.ErrInvalidLimit)
	})

	t.Run("resolves image urls from paths", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		ctx := context.Background()
		photos := []entity.Photo{
			{ID: uuid.New(), Title: "One", ImagePath: "admin/1-a-one.jpg"},
			{ID: uuid.New(), Title: "Two", ImagePath: "admin/2-b-two.jpg"},
		}

		photoRepo.EXPECT().
			ListPublic(ctx, pagination.Window{Offset: 9, Limit: 9}).
			Return(photos, nil)
		objects.EXPECT().PublicURL("admin/1-a-one.jpg").Return("https://cdn/admin/1-a-one.jpg")
		objects.EXPECT().PublicURL("admin/2-b-two.jpg").Return("https://cdn/admin/2-b-two.jpg")

		result, err := svc.ListPublic(ctx, 9, 9)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "https://cdn/admin/1-a-one.jpg", result[0].ImageURL)
		assert.Equal(t, "https://cdn/admin/2-b-two.jpg", result[1].ImageURL)
	})

	t.Run("clamps negative offset to zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		ctx := context.Background()
		photoRepo.EXPECT().
			ListPublic(ctx, pagination.Window{Offset: 0, Limit: 9}).
			Return(nil, nil)

		_, err := svc.ListPublic(ctx, -5, 9)
		require.NoError(t, err)
	})
}

func TestService_ListAdmin(t *testing.T) {
	t.Run("rejects unknown scope", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		_, err := svc.ListAdmin(context.Background(), repository.Scope("archived"))
		assert.ErrorIs(t, err, domain.ErrInvalidScope)
	})

	t.Run("lists trash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		ctx := context.Background()
		deletedAt := time.Now()
		photos := []entity.Photo{
			{ID: uuid.New(), Title: "Trashed", ImagePath: "admin/3-c-t.jpg", DeletedAt: &deletedAt},
		}

		photoRepo.EXPECT().ListByScope(ctx, repository.ScopeTrash).Return(photos, nil)
		objects.EXPECT().PublicURL("admin/3-c-t.jpg").Return("https://cdn/admin/3-c-t.jpg")

		result, err := svc.ListAdmin(ctx, repository.ScopeTrash)

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.True(t, result[0].IsDeleted())
	})
}

func TestService_Overview(t *testing.T) {
	t.Run("fetches both scopes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		activePhotos := []entity.Photo{{ID: uuid.New(), ImagePath: "a/p1.jpg"}}
		deletedAt := time.Now()
		trashPhotos := []entity.Photo{{ID: uuid.New(), ImagePath: "a/p2.jpg", DeletedAt: &deletedAt}}

		photoRepo.EXPECT().ListByScope(gomock.Any(), repository.ScopeActive).Return(activePhotos, nil)
		photoRepo.EXPECT().ListByScope(gomock.Any(), repository.ScopeTrash).Return(trashPhotos, nil)
		objects.EXPECT().PublicURL("a/p1.jpg").Return("https://cdn/a/p1.jpg")
		objects.EXPECT().PublicURL("a/p2.jpg").Return("https://cdn/a/p2.jpg")

		active, trash, err := svc.Overview(context.Background())

		require.NoError(t, err)
		require.Len(t, active, 1)
		require.Len(t, trash, 1)
		assert.Equal(t, "https://cdn/a/p1.jpg", active[0].ImageURL)
		assert.Equal(t, "https://cdn/a/p2.jpg", trash[0].ImageURL)
	})

	t.Run("surfaces query error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		queryErr := errors.New("connection reset")
		photoRepo.EXPECT().ListByScope(gomock.Any(), repository.ScopeActive).Return(nil, queryErr)
		photoRepo.EXPECT().ListByScope(gomock.Any(), repository.ScopeTrash).Return(nil, nil).MaxTimes(1)

		_, _, err := svc.Overview(context.Background())
		assert.ErrorIs(t, err, queryErr)
	})
}

func TestService_Create(t *testing.T) {
	ownerID := uuid.New()
	shot := time.Date(2025, 7, 14, 0, 0, 0, 0, time.UTC)

	input := func(file io.Reader) gallery.CreateInput {
		return gallery.CreateInput{
			OwnerID:     ownerID,
			File:        file,
			Filename:    "Sunset At The Pier.JPG",
			ContentType: "image/jpeg",
			Size:        11,
			Metadata: entity.Metadata{
				Title:    "  Dawn  ",
				Caption:  "   ",
				Tags:     []string{" a ", "", " b,b "},
				ShotDate: shot,
			},
		}
	}

	keyPattern := regexp.MustCompile(`^` + ownerID.String() + `/\d+-[0-9a-f-]{36}-sunset-at-the-pier\.jpg$`)

	t.Run("uploads then inserts with normalized metadata", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		ctx := context.Background()
		file := bytes.NewReader([]byte("image bytes"))

		var uploadedKey string
		objects.EXPECT().
			Upload(ctx, gomock.Any(), file, "image/jpeg", int64(11)).
			DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ string, _ int64) error {
				uploadedKey = key
				return nil
			})
		photoRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		objects.EXPECT().PublicURL(gomock.Any()).DoAndReturn(func(key string) string {
			return "https://cdn/" + key
		})

		photo, err := svc.Create(ctx, input(file))

		require.NoError(t, err)
		assert.Regexp(t, keyPattern, uploadedKey)
		assert.Equal(t, uploadedKey, photo.ImagePath)
		assert.Equal(t, "https://cdn/"+uploadedKey, photo.ImageURL)
		assert.Equal(t, "Dawn", photo.Title)
		assert.Nil(t, photo.Caption)
		assert.Equal(t, []string{"a", "b,b"}, photo.Tags)
		assert.Equal(t, shot, photo.ShotDate)
	})

	t.Run("aborts on upload failure without touching rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		uploadErr := errors.New("bucket unreachable")
		objects.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(uploadErr)

		photo, err := svc.Create(context.Background(), input(bytes.NewReader([]byte("image bytes"))))

		assert.Nil(t, photo)
		assert.ErrorIs(t, err, uploadErr)
	})

	t.Run("surfaces key collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		objects.EXPECT().
			Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(domain.ErrObjectExists)

		_, err := svc.Create(context.Background(), input(bytes.NewReader([]byte("image bytes"))))
		assert.ErrorIs(t, err, domain.ErrObjectExists)
	})

	t.Run("deletes uploaded object when insert fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		ctx := context.Background()
		insertErr := errors.New("unique violation")

		var uploadedKey, deletedKey string
		objects.EXPECT().
			Upload(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string, _ io.Reader, _ string, _ int64) error {
				uploadedKey = key
				return nil
			})
		photoRepo.EXPECT().Create(ctx, gomock.Any()).Return(insertErr)
		objects.EXPECT().
			Delete(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) error {
				deletedKey = key
				return nil
			})

		photo, err := svc.Create(ctx, input(bytes.NewReader([]byte("image bytes"))))

		assert.Nil(t, photo)
		assert.ErrorIs(t, err, insertErr)
		assert.Equal(t, uploadedKey, deletedKey)
	})
}

func TestService_Update(t *testing.T) {
	t.Run("normalizes metadata before writing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		ctx := context.Background()
		photoID := uuid.New()
		shot := time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)

		stored := &entity.Photo{ID: photoID, Title: "Dawn", ShotDate: shot, ImagePath: "a/k.jpg"}

		photoRepo.EXPECT().
			UpdateMetadata(ctx, photoID, entity.Metadata{Title: "Dawn", Tags: []string{"a", "b,b"}, ShotDate: shot}).
			Return(stored, nil)
		objects.EXPECT().PublicURL("a/k.jpg").Return("https://cdn/a/k.jpg")

		photo, err := svc.Update(ctx, photoID, entity.Metadata{
			Title:    "  Dawn  ",
			Caption:  "   ",
			Tags:     []string{" a ", "", " b,b "},
			ShotDate: shot,
		})

		require.NoError(t, err)
		assert.Equal(t, "https://cdn/a/k.jpg", photo.ImageURL)
	})

	t.Run("propagates not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		photoID := uuid.New()
		photoRepo.EXPECT().
			UpdateMetadata(gomock.Any(), photoID, gomock.Any()).
			Return(nil, domain.ErrPhotoNotFound)

		_, err := svc.Update(context.Background(), photoID, entity.Metadata{Title: "x"})
		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})
}

func TestService_PermanentDelete(t *testing.T) {
	photoID := uuid.New()
	stored := &entity.Photo{ID: photoID, Title: "Dawn", ImagePath: "a/k.jpg"}

	t.Run("removes object then row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		ctx := context.Background()
		gomock.InOrder(
			photoRepo.EXPECT().GetByID(ctx, photoID).Return(stored, nil),
			objects.EXPECT().Delete(ctx, "a/k.jpg").Return(nil),
			photoRepo.EXPECT().Delete(ctx, photoID).Return(nil),
		)

		require.NoError(t, svc.PermanentDelete(ctx, photoID))
	})

	t.Run("tolerates already-gone object on retry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		ctx := context.Background()
		photoRepo.EXPECT().GetByID(ctx, photoID).Return(stored, nil)
		objects.EXPECT().Delete(ctx, "a/k.jpg").Return(domain.ErrObjectNotFound)
		photoRepo.EXPECT().Delete(ctx, photoID).Return(nil)

		require.NoError(t, svc.PermanentDelete(ctx, photoID))
	})

	t.Run("aborts before row delete on other storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		ctx := context.Background()
		storageErr := errors.New("access denied")
		photoRepo.EXPECT().GetByID(ctx, photoID).Return(stored, nil)
		objects.EXPECT().Delete(ctx, "a/k.jpg").Return(storageErr)

		err := svc.PermanentDelete(ctx, photoID)
		assert.ErrorIs(t, err, storageErr)
	})

	t.Run("surfaces row delete failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		ctx := context.Background()
		rowErr := errors.New("deadlock detected")
		photoRepo.EXPECT().GetByID(ctx, photoID).Return(stored, nil)
		objects.EXPECT().Delete(ctx, "a/k.jpg").Return(nil)
		photoRepo.EXPECT().Delete(ctx, photoID).Return(rowErr)

		err := svc.PermanentDelete(ctx, photoID)
		assert.ErrorIs(t, err, rowErr)
	})

	t.Run("propagates missing photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		photoRepo := mocks.NewMockPhotoRepository(ctrl)
		objects := mocks.NewMockObjectStorage(ctrl)
		svc := gallery.NewService(photoRepo, objects)

		photoRepo.EXPECT().GetByID(gomock.Any(), photoID).Return(nil, domain.ErrPhotoNotFound)

		err := svc.PermanentDelete(context.Background(), photoID)
		assert.ErrorIs(t, err, domain.ErrPhotoNotFound)
	})
}

func TestService_SoftDeleteRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	photoRepo := mocks.NewMockPhotoRepository(ctrl)
	objects := mocks.NewMockObjectStorage(ctrl)
	svc := gallery.NewService(photoRepo, objects)

	ctx := context.Background()
	photoID := uuid.New()

	photoRepo.EXPECT().SoftDelete(ctx, photoID).Return(nil)
	photoRepo.EXPECT().Restore(ctx, photoID).Return(nil)

	require.NoError(t, svc.SoftDelete(ctx, photoID))
	require.NoError(t, svc.Restore(ctx, photoID))
}
