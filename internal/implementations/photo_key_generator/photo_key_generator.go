package photokeygenerator

import (
	"mime"

	"github.com/google/uuid"
)

type UUID struct {
	prefix string
}

func NewUUID(prefix string) *UUID {
	return &UUID{prefix: prefix}
}

func (g *UUID) GeneratePhotoKey(contentType string) string {
	key := g.prefix + uuid.New().String()
	extensions, err := mime.ExtensionsByType(contentType)
	if err == nil && len(extensions) > 0 {
		key += extensions[0]
	}
	return key
}
