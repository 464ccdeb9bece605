package settings

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/hibob"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/domain/shared"
	"github.com/Kiefer-Networks/homeoffice-shop-sub000/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// DefaultTTL bounds how stale a cached setting may be
const DefaultTTL = 30 * time.Second

// Defaults returns the static fallback values used when a key has no row in
// the settings table. The expense table id defaults to empty so an
// unconfigured deployment surfaces as TABLE_NOT_CONFIGURED rather than a
// missing-key error.
func Defaults() map[string]string {
	return map[string]string{
		hibob.SettingExpenseTableID:        "",
		hibob.SettingExpenseColumnDate:     "date",
		hibob.SettingExpenseColumnDesc:     "description",
		hibob.SettingExpenseColumnAmount:   "amount",
		hibob.SettingExpenseColumnCurrency: "currency",
	}
}

type cachedValue struct {
	value     string
	fetchedAt time.Time
}

// Provider implements shared.SettingsProvider over the settings table with a
// short-TTL in-process cache and static fallback defaults.
type Provider struct {
	db       *gorm.DB
	ttl      time.Duration
	defaults map[string]string

	mu    sync.RWMutex
	cache map[string]cachedValue
}

// NewProvider creates a settings provider with the given TTL and defaults
func NewProvider(db *gorm.DB, ttl time.Duration, defaults map[string]string) *Provider {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Provider{
		db:       db,
		ttl:      ttl,
		defaults: defaults,
		cache:    make(map[string]cachedValue),
	}
}

// Get returns the setting value for key. Values are cached for the TTL;
// a missing row falls back to the static default, and a key with neither
// returns shared.ErrNotFound.
func (p *Provider) Get(ctx context.Context, key string) (string, error) {
	p.mu.RLock()
	cached, ok := p.cache[key]
	p.mu.RUnlock()
	if ok && time.Since(cached.fetchedAt) < p.ttl {
		return cached.value, nil
	}

	var row models.SettingModel
	err := p.db.WithContext(ctx).First(&row, "key = ?", key).Error
	switch {
	case err == nil:
		p.store(key, row.Value)
		return row.Value, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		if fallback, ok := p.defaults[key]; ok {
			p.store(key, fallback)
			return fallback, nil
		}
		return "", shared.ErrNotFound
	default:
		// Serve the stale value rather than failing a run on a settings
		// table hiccup
		if ok {
			return cached.value, nil
		}
		return "", err
	}
}

// Set writes a setting row and refreshes the cache entry
func (p *Provider) Set(ctx context.Context, key, value string) error {
	row := models.SettingModel{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now(),
	}
	if err := p.db.WithContext(ctx).Save(&row).Error; err != nil {
		return err
	}
	p.store(key, value)
	return nil
}

func (p *Provider) store(key, value string) {
	p.mu.Lock()
	p.cache[key] = cachedValue{value: value, fetchedAt: time.Now()}
	p.mu.Unlock()
}

var _ shared.SettingsProvider = (*Provider)(nil)
