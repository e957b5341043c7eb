package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"media-share-api/internal/application/ports"
	"media-share-api/internal/application/services"
	mediaDTO "media-share-api/internal/interface/api/rest/dto/media"
	"media-share-api/internal/interface/api/rest/middleware"
	"media-share-api/internal/interface/api/rest/validator"
)

type MediaController struct {
	logger       *zap.Logger
	mediaService ports.MediaService
}

func NewMediaController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.AuthService,
	mediaService ports.MediaService,
) *MediaController {
	mc := &MediaController{
		logger:       logger,
		mediaService: mediaService,
	}

	r.POST(RouteUpload, middleware.SessionMiddleware(authService), mc.UploadHandler)
	r.GET(RouteFiles, middleware.SessionMiddleware(authService), mc.ListHandler)

	return mc
}

func (mc *MediaController) UploadHandler(c *gin.Context) {
	owner := middleware.Principal(c)

	// hard stop on the wire before the size check on the part header
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxUploadBytes+1<<20)

	fh, err := c.FormFile("file")
	if err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			c.JSON(
				http.StatusRequestEntityTooLarge,
				gin.H{"error": services.ErrFileTooLarge.Error()},
			)
			return
		}
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "file field is required"},
		)
		return
	}

	mf, err := mc.mediaService.Ingest(c.Request.Context(), owner, fh)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyFile):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error()})
		default:
			c.JSON(
				http.StatusInternalServerError,
				gin.H{"error": "failed to store file"},
			)
			mc.logger.Error("Ingest() error", zap.Error(err))
		}
		return
	}

	c.JSON(http.StatusCreated, mediaDTO.UploadResponse{
		File: mediaDTO.ToResponseMediaFile(*mf),
	})
}

func (mc *MediaController) ListHandler(c *gin.Context) {
	limit, err := validator.ValidateLimit(c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	files, err := mc.mediaService.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to list files"},
		)
		mc.logger.Error("ListRecent() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, mediaDTO.ListResponse{
		Files: mediaDTO.ToResponseMediaFiles(files),
	})
}
