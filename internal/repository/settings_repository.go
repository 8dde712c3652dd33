package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kingkongandy/limelight-post/internal/model"

	"github.com/redis/go-redis/v9"
)

const settingsKey = "limelight:schedule-settings"

// SettingsRepository stores the singleton schedule config as one JSON blob,
// read and written wholesale.
type SettingsRepository struct {
	rdb *redis.Client
	ctx context.Context
}

func NewSettingsRepository(rdb *redis.Client) *SettingsRepository {
	return &SettingsRepository{rdb: rdb, ctx: context.Background()}
}

// GetSettings returns the defaults when nothing has been stored yet.
func (r *SettingsRepository) GetSettings() (model.ScheduleSettings, error) {
	data, err := r.rdb.Get(r.ctx, settingsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.DefaultScheduleSettings(), nil
	}
	if err != nil {
		return model.ScheduleSettings{}, fmt.Errorf("get schedule settings: %w", err)
	}

	var settings model.ScheduleSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return model.ScheduleSettings{}, fmt.Errorf("unmarshal schedule settings: %w", err)
	}
	return settings, nil
}

func (r *SettingsRepository) SaveSettings(settings model.ScheduleSettings) error {
	data, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("marshal schedule settings: %w", err)
	}
	if err := r.rdb.Set(r.ctx, settingsKey, data, 0).Err(); err != nil {
		return fmt.Errorf("save schedule settings: %w", err)
	}
	return nil
}
