package uploadstorephoto

import (
	"context"
	"errors"
	"io"
	e "storemap/internal/core/domain/errors"
	"storemap/internal/core/domain/logging"
	"storemap/internal/core/domain/store"
	"storemap/internal/core/domain/user"
	"storemap/internal/core/services"
	"storemap/internal/core/services/auth"
)

type Input struct {
	StoreID     store.ID
	ContentType string
	Content     io.Reader
	Size        int64
	User        user.User
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct {
	Store store.Store
}

type service struct {
	log               logging.Logger
	storeRepository   store.StoreRepository
	photoStorage      store.PhotoStorage
	photoKeyGenerator store.PhotoKeyGenerator
}

func New(
	log logging.Logger,
	storeRepository store.StoreRepository,
	photoStorage store.PhotoStorage,
	photoKeyGenerator store.PhotoKeyGenerator,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if storeRepository == nil {
		panic(e.NewNilArgumentError("storeRepository"))
	}
	if photoStorage == nil {
		panic(e.NewNilArgumentError("photoStorage"))
	}
	if photoKeyGenerator == nil {
		panic(e.NewNilArgumentError("photoKeyGenerator"))
	}
	return &service{
		log:               log,
		storeRepository:   storeRepository,
		photoStorage:      photoStorage,
		photoKeyGenerator: photoKeyGenerator,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	existingStore, err := s.storeRepository.GetByID(ctx, input.StoreID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, store.ErrStoreDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not get store.", logging.Entry("err", err))
		return result, err
	}
	if existingStore.AuthorID != input.User.ID {
		s.log.Info(
			ctx,
			"User tried to upload a photo for a store they do not own.",
			logging.Entry("storeID", input.StoreID),
			logging.Entry("userID", input.User.ID),
		)
		return result, store.ErrNotStoreAuthor
	}

	key := s.photoKeyGenerator.GeneratePhotoKey(input.ContentType)
	err = s.photoStorage.Save(ctx, key, input.ContentType, input.Content, input.Size)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not save store photo.",
			logging.Entry("storeID", input.StoreID),
			logging.Entry("key", key),
			logging.Entry("err", err),
		)
		return result, err
	}

	updatedStore, err := s.storeRepository.SetPhoto(ctx, input.StoreID, key)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not attach photo to store.",
			logging.Entry("storeID", input.StoreID),
			logging.Entry("key", key),
			logging.Entry("err", err),
		)
		return result, err
	}
	s.log.Info(
		ctx,
		"Store photo has been uploaded.",
		logging.Entry("storeID", input.StoreID),
		logging.Entry("key", key),
	)
	return Result{Store: updatedStore}, nil
}
