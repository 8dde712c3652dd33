package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kingkongandy/limelight-post/internal/model"

	"github.com/redis/go-redis/v9"
)

const (
	storyKeyPrefix    = "limelight:story:"
	storyIndexKey     = "limelight:stories"
	verticalKeyPrefix = "limelight:stories:"
)

// StoryRepository persists stories in Redis: the record as a JSON blob plus
// newest-first id indexes, global and per vertical. Writes are last write
// wins, there is no optimistic concurrency.
type StoryRepository struct {
	rdb *redis.Client
	ctx context.Context
}

func NewStoryRepository(rdb *redis.Client) *StoryRepository {
	return &StoryRepository{rdb: rdb, ctx: context.Background()}
}

func (r *StoryRepository) SaveStory(story *model.Story) error {
	data, err := json.Marshal(story)
	if err != nil {
		return fmt.Errorf("marshal story: %w", err)
	}

	pipe := r.rdb.TxPipeline()
	pipe.Set(r.ctx, storyKeyPrefix+story.ID, data, 0)
	pipe.LPush(r.ctx, storyIndexKey, story.ID)
	pipe.LPush(r.ctx, verticalKeyPrefix+string(story.Vertical), story.ID)
	if _, err := pipe.Exec(r.ctx); err != nil {
		return fmt.Errorf("save story %s: %w", story.ID, err)
	}
	return nil
}

// GetStory returns nil when the id is unknown.
func (r *StoryRepository) GetStory(id string) (*model.Story, error) {
	data, err := r.rdb.Get(r.ctx, storyKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get story %s: %w", id, err)
	}

	var story model.Story
	if err := json.Unmarshal(data, &story); err != nil {
		return nil, fmt.Errorf("unmarshal story %s: %w", id, err)
	}
	return &story, nil
}

// ListStories returns the newest stories first, optionally filtered to one
// vertical. Index entries whose record has been removed are skipped.
func (r *StoryRepository) ListStories(vertical model.Vertical, limit int) ([]model.Story, error) {
	key := storyIndexKey
	if vertical != "" {
		key = verticalKeyPrefix + string(vertical)
	}

	ids, err := r.rdb.LRange(r.ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list stories: %w", err)
	}

	stories := make([]model.Story, 0, len(ids))
	for _, id := range ids {
		story, err := r.GetStory(id)
		if err != nil {
			return nil, err
		}
		if story == nil {
			continue
		}
		stories = append(stories, *story)
	}
	return stories, nil
}
