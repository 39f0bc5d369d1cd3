// Package mealplan caches generated meal plans in a gocloud.dev bucket.
package mealplan

import (
	"context"
	"encoding/json"
	"log/slog"
	"path"
	"time"

	"gymtrack/config"
	"gymtrack/internal/domain/entity"
	"gymtrack/internal/domain/service"
	"gymtrack/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

const (
	contentType      = "application/json"
	checksumMetadata = "sha256"
)

type blobStore struct {
	bucket *blob.Bucket
	prefix string
	logger *slog.Logger
	now    func() time.Time
}

// StoreParams holds dependencies for the meal plan store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStore opens mealPlan.bucketUrl and closes it on shutdown.
func NewStore(params StoreParams) (service.MealPlanStore, error) {
	bucketURL := "mem://"
	prefix := ""
	if params.Config.MealPlan != nil {
		if params.Config.MealPlan.BucketURL != "" {
			bucketURL = params.Config.MealPlan.BucketURL
		}
		prefix = params.Config.MealPlan.Prefix
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open meal plan bucket %s", bucketURL)
	}

	params.Logger.Info("Meal plan store opened", slog.String("bucket", bucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return NewBlobStore(bucket, prefix, params.Logger), nil
}

// NewBlobStore wraps an already opened bucket.
func NewBlobStore(bucket *blob.Bucket, prefix string, logger *slog.Logger) service.MealPlanStore {
	return &blobStore{bucket: bucket, prefix: prefix, logger: logger, now: time.Now}
}

func (s *blobStore) key(userID uuid.UUID) string {
	return path.Join(s.prefix, "meal-plans", userID.String()+".json")
}

// Save stamps FetchedAt when it is unset and writes the plan as JSON.
func (s *blobStore) Save(ctx context.Context, plan *entity.MealPlan) error {
	if plan.FetchedAt.IsZero() {
		plan.FetchedAt = s.now().UTC()
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return errors.WithStack(err)
	}

	err = s.bucket.WriteAll(ctx, s.key(plan.UserID), data, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{checksumMetadata: util.Checksum(data)},
	})
	if err != nil {
		return errors.Wrap(err, "write meal plan")
	}

	return nil
}

// Load reads the plan and checks it against the checksum written by Save.
// A plan that fails the check is reported as missing.
func (s *blobStore) Load(ctx context.Context, userID uuid.UUID) (*entity.MealPlan, error) {
	key := s.key(userID)

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "read meal plan attributes")
	}

	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrMealPlanNotFound
		}

		return nil, errors.Wrap(err, "read meal plan")
	}

	if want := attrs.Metadata[checksumMetadata]; want != "" && want != util.Checksum(data) {
		s.logger.Warn("Meal plan checksum mismatch", slog.String("key", key))

		return nil, errors.Wrap(service.ErrMealPlanNotFound, "checksum mismatch")
	}

	var plan entity.MealPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, errors.Wrap(err, "decode meal plan")
	}

	return &plan, nil
}

func (s *blobStore) Delete(ctx context.Context, userID uuid.UUID) error {
	err := s.bucket.Delete(ctx, s.key(userID))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete meal plan")
	}

	return nil
}
