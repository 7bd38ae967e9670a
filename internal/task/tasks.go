package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeGenerateThumbnail = "media:generate_thumbnail"

type GenerateThumbnailPayload struct {
	MediaID string `json:"media_id"`
}

// NewGenerateThumbnailTask creates an Asynq task rendering the thumbnail of a photo.
func NewGenerateThumbnailTask(mediaID string) (*asynq.Task, error) {
	data, err := json.Marshal(GenerateThumbnailPayload{MediaID: mediaID})
	if err != nil {
		return nil, fmt.Errorf("could not marshal generate-thumbnail payload: %w", err)
	}
	return asynq.NewTask(TypeGenerateThumbnail, data, asynq.MaxRetry(5)), nil
}

// ParseGenerateThumbnailPayload parses the task payload to GenerateThumbnailPayload.
func ParseGenerateThumbnailPayload(t *asynq.Task) (GenerateThumbnailPayload, error) {
	var p GenerateThumbnailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return GenerateThumbnailPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
