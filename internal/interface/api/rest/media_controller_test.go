package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"media-share-api/internal/application/services"
	"media-share-api/internal/domain/media"
	"media-share-api/internal/domain/user"
)

func newMediaRouter(t *testing.T, mediaSvc *FakeMediaService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	authSvc := &FakeAuthService{
		AuthenticateFunc: func(ctx context.Context, token string) (*user.User, error) {
			if token != "tok-123" {
				return nil, services.ErrUnauthorized
			}
			return testUser(), nil
		},
	}

	r := gin.New()
	NewMediaController(r, zap.NewNop(), authSvc, mediaSvc)
	return r
}

func doMultipart(t *testing.T, r *gin.Engine, token, field, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, RouteUpload, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sampleFile() *media.MediaFile {
	return &media.MediaFile{
		ID:           42,
		OwnerID:      7,
		StorageName:  "0f6e1a2b-cat.png",
		OriginalName: "Cat.PNG",
		MimeType:     "image/png",
		SizeBytes:    3,
		DownloadURL:  "http://minio:9000/media/0f6e1a2b-cat.png",
		CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestUploadHandler_Created(t *testing.T) {
	svc := &FakeMediaService{
		IngestFunc: func(ctx context.Context, owner *user.User, in *multipart.FileHeader) (*media.MediaFile, error) {
			require.NotNil(t, owner)
			assert.Equal(t, user.ID(7), owner.ID)
			assert.Equal(t, "Cat.PNG", in.Filename)
			return sampleFile(), nil
		},
	}
	r := newMediaRouter(t, svc)

	w := doMultipart(t, r, "tok-123", "file", "Cat.PNG", []byte("png"))

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		File struct {
			ID           uint64 `json:"id"`
			Name         string `json:"name"`
			OriginalName string `json:"original_name"`
			URL          string `json:"url"`
		} `json:"file"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, uint64(42), resp.File.ID)
	assert.Equal(t, "0f6e1a2b-cat.png", resp.File.Name)
	assert.Equal(t, "Cat.PNG", resp.File.OriginalName)
	assert.Equal(t, "http://minio:9000/media/0f6e1a2b-cat.png", resp.File.URL)
}

func TestUploadHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		ingestErr  error
		wantStatus int
	}{
		{"empty file", services.ErrEmptyFile, http.StatusBadRequest},
		{"too large", services.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
		{"storage down", services.ErrStorage, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := &FakeMediaService{
				IngestFunc: func(ctx context.Context, owner *user.User, in *multipart.FileHeader) (*media.MediaFile, error) {
					return nil, tt.ingestErr
				},
			}
			r := newMediaRouter(t, svc)

			w := doMultipart(t, r, "tok-123", "file", "x.png", []byte("x"))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestUploadHandler_MissingFileField(t *testing.T) {
	svc := &FakeMediaService{
		IngestFunc: func(ctx context.Context, owner *user.User, in *multipart.FileHeader) (*media.MediaFile, error) {
			t.Fatal("Ingest must not be called without a file part")
			return nil, nil
		},
	}
	r := newMediaRouter(t, svc)

	w := doMultipart(t, r, "tok-123", "attachment", "x.png", []byte("x"))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadHandler_Unauthorized(t *testing.T) {
	svc := &FakeMediaService{
		IngestFunc: func(ctx context.Context, owner *user.User, in *multipart.FileHeader) (*media.MediaFile, error) {
			t.Fatal("Ingest must not be called without a session")
			return nil, nil
		},
	}
	r := newMediaRouter(t, svc)

	w := doMultipart(t, r, "stale", "file", "x.png", []byte("x"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListHandler_SharedGalleryShape(t *testing.T) {
	svc := &FakeMediaService{
		ListRecentFunc: func(ctx context.Context, limit int) (media.MediaFiles, error) {
			assert.Equal(t, 0, limit)
			return media.MediaFiles{sampleFile()}, nil
		},
	}
	r := newMediaRouter(t, svc)

	w := doJSON(t, r, http.MethodGet, RouteFiles, nil, "tok-123")

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Files []map[string]any `json:"files"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Files, 1)
	// gallery entries never expose database ids or owners
	assert.NotContains(t, resp.Files[0], "id")
	assert.NotContains(t, resp.Files[0], "owner_id")
	assert.Equal(t, "0f6e1a2b-cat.png", resp.Files[0]["name"])
}

func TestListHandler_LimitParam(t *testing.T) {
	t.Run("forwarded", func(t *testing.T) {
		var gotLimit int
		svc := &FakeMediaService{
			ListRecentFunc: func(ctx context.Context, limit int) (media.MediaFiles, error) {
				gotLimit = limit
				return media.MediaFiles{}, nil
			},
		}
		r := newMediaRouter(t, svc)

		w := doJSON(t, r, http.MethodGet, RouteFiles+"?limit=25", nil, "tok-123")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 25, gotLimit)
	})

	t.Run("invalid", func(t *testing.T) {
		svc := &FakeMediaService{
			ListRecentFunc: func(ctx context.Context, limit int) (media.MediaFiles, error) {
				t.Fatal("ListRecent must not be called on a bad limit")
				return nil, nil
			},
		}
		r := newMediaRouter(t, svc)

		w := doJSON(t, r, http.MethodGet, RouteFiles+"?limit=-1", nil, "tok-123")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
