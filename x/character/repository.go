package character

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/shielddb/shield/core"
)

const (
	countCacheKey = "character_count"
	listCacheKey  = "character_list"
)

// Repository is the interface for character repository
type Repository interface {
	Create(ctx context.Context, character core.Character) (core.Character, error)
	GetByName(ctx context.Context, name string) (core.Character, error)
	Update(ctx context.Context, name string, updates map[string]any) (core.Character, error)
	Delete(ctx context.Context, name string) (core.Character, error)
	GetList(ctx context.Context) ([]core.Character, error)
	Search(ctx context.Context, term string, limit int) ([]core.Character, error)
	Count(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
	mc *memcache.Client
}

// NewRepository creates a new character repository
func NewRepository(db *gorm.DB, mc *memcache.Client) Repository {

	var count int64
	err := db.Model(&core.Character{}).Count(&count).Error
	if err != nil {
		slog.Error(
			"failed to count characters",
			slog.String("error", err.Error()),
		)
	}

	mc.Set(&memcache.Item{Key: countCacheKey, Value: []byte(strconv.FormatInt(count, 10))})

	return &repository{db, mc}
}

// Count returns the total number of characters
func (r *repository) Count(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Count")
	defer span.End()

	item, err := r.mc.Get(countCacheKey)
	if err == nil {
		count, err := strconv.ParseInt(string(item.Value), 10, 64)
		if err == nil {
			return count, nil
		}
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&core.Character{}).Count(&count).Error; err != nil {
		span.RecordError(err)
		return 0, errors.Wrap(err, "failed to count characters")
	}
	r.mc.Set(&memcache.Item{Key: countCacheKey, Value: []byte(strconv.FormatInt(count, 10))})
	return count, nil
}

// Create inserts a new character row.
// A unique-constraint violation on the name maps to ErrorAlreadyExists.
func (r *repository) Create(ctx context.Context, character core.Character) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Create")
	defer span.End()

	if err := r.db.WithContext(ctx).Create(&character).Error; err != nil {
		span.RecordError(err)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return core.Character{}, core.NewErrorAlreadyExists()
		}
		return core.Character{}, errors.Wrap(err, "failed to create character")
	}

	r.invalidateCache(ctx)

	return character, nil
}

// GetByName returns a character by its lowercase name
func (r *repository) GetByName(ctx context.Context, name string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.GetByName")
	defer span.End()

	var character core.Character
	if err := r.db.WithContext(ctx).First(&character, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Character{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to get character")
	}
	return character, nil
}

// Update applies the given column updates to the named character and
// returns the row as stored afterwards.
func (r *repository) Update(ctx context.Context, name string, updates map[string]any) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Update")
	defer span.End()

	var character core.Character
	if err := r.db.WithContext(ctx).First(&character, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Character{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to get character")
	}

	if err := r.db.WithContext(ctx).Model(&character).Updates(updates).Error; err != nil {
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to update character")
	}

	if err := r.db.WithContext(ctx).First(&character, "name = ?", name).Error; err != nil {
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to reload character")
	}

	r.invalidateCache(ctx)

	return character, nil
}

// Delete removes the named character and returns the removed row
func (r *repository) Delete(ctx context.Context, name string) (core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Delete")
	defer span.End()

	var character core.Character
	if err := r.db.WithContext(ctx).First(&character, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return core.Character{}, core.NewErrorNotFound()
		}
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to get character")
	}

	if err := r.db.WithContext(ctx).Delete(&core.Character{}, "name = ?", name).Error; err != nil {
		span.RecordError(err)
		return core.Character{}, errors.Wrap(err, "failed to delete character")
	}

	r.invalidateCache(ctx)

	return character, nil
}

// GetList returns every character ordered by name
func (r *repository) GetList(ctx context.Context) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.GetList")
	defer span.End()

	item, err := r.mc.Get(listCacheKey)
	if err == nil {
		var characters []core.Character
		if err := json.Unmarshal(item.Value, &characters); err == nil {
			return characters, nil
		}
	}

	var characters []core.Character
	if err := r.db.WithContext(ctx).Order("name").Find(&characters).Error; err != nil {
		span.RecordError(err)
		return []core.Character{}, errors.Wrap(err, "failed to list characters")
	}
	if characters == nil {
		characters = []core.Character{}
	}

	// password hashes carry json:"-" so the cached copy never holds them
	cached, err := json.Marshal(characters)
	if err == nil {
		r.mc.Set(&memcache.Item{Key: listCacheKey, Value: cached})
	}

	return characters, nil
}

// Search returns characters whose name contains term, ordered by name
func (r *repository) Search(ctx context.Context, term string, limit int) ([]core.Character, error) {
	ctx, span := tracer.Start(ctx, "Character.Repository.Search")
	defer span.End()

	var characters []core.Character
	err := r.db.WithContext(ctx).
		Where("name ILIKE ?", "%"+term+"%").
		Order("name").
		Limit(limit).
		Find(&characters).Error
	if err != nil {
		span.RecordError(err)
		return []core.Character{}, errors.Wrap(err, "failed to search characters")
	}
	if characters == nil {
		characters = []core.Character{}
	}
	return characters, nil
}

// invalidateCache drops the list cache and refreshes the count cache.
// Called on every mutation so the cache never outlives a broadcast.
func (r *repository) invalidateCache(ctx context.Context) {
	r.mc.Delete(listCacheKey)

	var count int64
	if err := r.db.WithContext(ctx).Model(&core.Character{}).Count(&count).Error; err != nil {
		slog.Error(
			"failed to count characters",
			slog.String("error", err.Error()),
		)
		return
	}
	r.mc.Set(&memcache.Item{Key: countCacheKey, Value: []byte(strconv.FormatInt(count, 10))})
}
