package services

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"media-share-api/internal/application/ports"
	domain "media-share-api/internal/domain/media"
	"media-share-api/internal/domain/user"
	"media-share-api/internal/infrastructure/mq"
	mediaDTO "media-share-api/internal/interface/api/rest/dto/media"
)

const (
	// MaxUploadBytes is the upload size ceiling, enforced before the
	// durable write ever starts.
	MaxUploadBytes = int64(200 << 20) // 200 MiB

	// MaxGalleryLimit caps the shared gallery regardless of the
	// requested page size.
	MaxGalleryLimit = 200

	maxSanitizedLen = 60
)

var (
	ErrEmptyFile    = errors.New("empty file")
	ErrFileTooLarge = errors.New("file too large")
	// ErrStorage marks durable-write failures. Not retried here; retry
	// policy belongs to the caller.
	ErrStorage = errors.New("storage write failed")

	unsafeRe = regexp.MustCompile(`[^a-z0-9._-]+`)
)

type MediaService struct {
	blob            ports.BlobStore
	mediaRepository domain.Repository
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
}

func NewMediaService(
	blob ports.BlobStore,
	mediaRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.MediaService {
	return &MediaService{
		blob:            blob,
		mediaRepository: mediaRepository,
		mq:              mq,
		mCounter:        mCounter,
	}
}

// Ingest streams the upload into the blob store and then, only after
// the write is durable, commits the metadata row. The row insert is the
// publish point: a failed write leaves no row, a failed insert removes
// the just-written object.
func (ms *MediaService) Ingest(
	ctx context.Context,
	owner *user.User,
	in *multipart.FileHeader,
) (*domain.MediaFile, error) {
	if in == nil || in.Size <= 0 {
		return nil, ErrEmptyFile
	}
	if in.Size > MaxUploadBytes {
		return nil, ErrFileTooLarge
	}

	storageName := genStorageName(in.Filename)
	mimeType := in.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	f, err := in.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	url, err := ms.blob.Put(ctx, storageName, f, in.Size, mimeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	mf := &domain.MediaFile{
		OwnerID:      owner.ID,
		StorageName:  storageName,
		OriginalName: in.Filename,
		MimeType:     mimeType,
		SizeBytes:    uint64(in.Size),
		DownloadURL:  url,
	}

	out, err := ms.mediaRepository.CreateMediaFile(ctx, mf)
	if err != nil {
		// the object is unreachable without a row; drop it
		_ = ms.blob.Remove(context.WithoutCancel(ctx), storageName)
		return nil, err
	}

	if ms.mq != nil {
		ms.mq.GetInputChan() <- mq.Event{
			Id:      uuid.New(),
			TS:      time.Now(),
			Action:  mq.ActionMediaUploaded,
			UserID:  uint64(owner.ID),
			Payload: mediaDTO.ToUploadedEvent(*out),
		}
	}

	ms.mCounter.WithLabelValues("media_uploads_total").Inc()

	return out, nil
}

// ListRecent returns the shared gallery, newest first. Visible to every
// authenticated user: the gallery is shared, not per-owner.
func (ms *MediaService) ListRecent(ctx context.Context, limit int) (domain.MediaFiles, error) {
	if limit <= 0 || limit > MaxGalleryLimit {
		limit = MaxGalleryLimit
	}

	mfs, err := ms.mediaRepository.FetchRecentMediaFiles(ctx, limit)
	if err != nil {
		return nil, err
	}

	return mfs, nil
}

// genStorageName composes "<uuid>-<sanitized>". The random prefix makes
// the key collision-free even for concurrent uploads of the same name.
func genStorageName(originalName string) string {
	return uuid.New().String() + "-" + sanitizeFileName(originalName)
}

// sanitizeFileName folds the name to ASCII, lower-cases it, collapses
// every run outside [a-z0-9._-] into a single '_' and truncates to 60
// bytes. Used only for the storage key, never as display text.
func sanitizeFileName(original string) string {
	s := strings.TrimSpace(original)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)

	if s == "." || s == ".." || s == "/" {
		s = ""
	}

	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	s, _, _ = transform.String(t, s)

	s = strings.ToLower(s)
	s = unsafeRe.ReplaceAllString(s, "_")

	if len(s) > maxSanitizedLen {
		s = s[:maxSanitizedLen]
	}
	if s == "" {
		s = "file"
	}

	return s
}

func isMn(r rune) bool { return unicode.Is(unicode.Mn, r) }
