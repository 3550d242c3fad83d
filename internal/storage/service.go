package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"time"

	"github.com/google/uuid"
)

type archive struct {
	client S3Client
	now    func() time.Time
}

func NewArchive(client S3Client) Archive {
	return &archive{client: client, now: time.Now}
}

// ObjectKey - images/<chat>/<date>/<uuid><ext>
func ObjectKey(chatID int64, date time.Time, id uuid.UUID, contentType string) string {
	ext := ".bin"
	if exts, err := mime.ExtensionsByType(contentType); err == nil && len(exts) > 0 {
		ext = exts[0]
	}
	return fmt.Sprintf("images/%d/%s/%s%s", chatID, date.Format("2006-01-02"), id, ext)
}

func (a *archive) SaveImage(ctx context.Context, chatID int64, data []byte, contentType string) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty image")
	}
	key := ObjectKey(chatID, a.now(), uuid.New(), contentType)
	return a.client.PutObject(ctx, key, bytes.NewReader(data), int64(len(data)), contentType)
}
