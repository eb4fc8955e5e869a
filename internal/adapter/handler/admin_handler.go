package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/photolog-dev/photolog-backend/internal/adapter/handler/dto/request"
	"github.com/photolog-dev/photolog-backend/internal/adapter/handler/dto/response"
	"github.com/photolog-dev/photolog-backend/internal/adapter/repository"
	"github.com/photolog-dev/photolog-backend/internal/domain"
	"github.com/photolog-dev/photolog-backend/internal/domain/entity"
	"github.com/photolog-dev/photolog-backend/internal/pkg/httputil"
	"github.com/photolog-dev/photolog-backend/internal/usecase/gallery"
)

const (
	maxUploadSize  = 25 << 20 // 25MB
	shotDateLayout = "2006-01-02"
)

// AdminHandler drives the management panel: uploads, metadata edits, the
// trash, and permanent removal.
type AdminHandler struct {
	gallerySvc GalleryService
}

func NewAdminHandler(gallerySvc GalleryService) *AdminHandler {
	return &AdminHandler{gallerySvc: gallerySvc}
}

// List returns a single scope when ?scope= is given, or both sides of the
// soft-delete partition at once when it is not.
func (h *AdminHandler) List(c *gin.Context) {
	var req request.AdminListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	if req.Scope == "" {
		active, trash, err := h.gallerySvc.Overview(c.Request.Context())
		if err != nil {
			httputil.InternalError(c)
			return
		}
		httputil.OK(c, response.OverviewResponse{
			Active: response.PhotosFromEntities(active),
			Trash:  response.PhotosFromEntities(trash),
		})
		return
	}

	photos, err := h.gallerySvc.ListAdmin(c.Request.Context(), repository.Scope(req.Scope))
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.AdminListResponse{
		Photos: response.PhotosFromEntities(photos),
	})
}

func (h *AdminHandler) Upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	meta, ok := h.bindMetadataForm(c)
	if !ok {
		return
	}

	photo, err := h.gallerySvc.Create(c.Request.Context(), gallery.CreateInput{
		OwnerID:     httputil.GetAdminID(c),
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Metadata:    meta,
	})
	if err != nil {
		if errors.Is(err, domain.ErrObjectExists) {
			httputil.ErrorWithCode(c, http.StatusConflict, "CONFLICT", "an object already exists at the derived key")
			return
		}
		httputil.InternalError(c)
		return
	}

	httputil.Created(c, response.PhotoFromEntity(photo))
}

func (h *AdminHandler) Update(c *gin.Context) {
	photoID, ok := h.photoID(c)
	if !ok {
		return
	}

	var req request.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	shotDate, err := time.Parse(shotDateLayout, req.ShotDate)
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_DATE", "shot_date must be YYYY-MM-DD")
		return
	}

	photo, err := h.gallerySvc.Update(c.Request.Context(), photoID, entity.Metadata{
		Title:    req.Title,
		Caption:  req.Caption,
		Tags:     req.Tags,
		ShotDate: shotDate,
	})
	if err != nil {
		h.handlePhotoError(c, err)
		return
	}

	httputil.OK(c, response.PhotoFromEntity(photo))
}

func (h *AdminHandler) SoftDelete(c *gin.Context) {
	photoID, ok := h.photoID(c)
	if !ok {
		return
	}

	if err := h.gallerySvc.SoftDelete(c.Request.Context(), photoID); err != nil {
		h.handlePhotoError(c, err)
		return
	}

	httputil.NoContent(c)
}

func (h *AdminHandler) Restore(c *gin.Context) {
	photoID, ok := h.photoID(c)
	if !ok {
		return
	}

	if err := h.gallerySvc.Restore(c.Request.Context(), photoID); err != nil {
		h.handlePhotoError(c, err)
		return
	}

	httputil.NoContent(c)
}

func (h *AdminHandler) PermanentDelete(c *gin.Context) {
	photoID, ok := h.photoID(c)
	if !ok {
		return
	}

	if err := h.gallerySvc.PermanentDelete(c.Request.Context(), photoID); err != nil {
		h.handlePhotoError(c, err)
		return
	}

	httputil.NoContent(c)
}

func (h *AdminHandler) photoID(c *gin.Context) (uuid.UUID, bool) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid photo id")
		return uuid.Nil, false
	}
	return photoID, true
}

// bindMetadataForm reads the metadata fields of the multipart upload form.
// Normalization happens in the gallery service; the handler only rejects what
// the admin form should never send.
func (h *AdminHandler) bindMetadataForm(c *gin.Context) (entity.Metadata, bool) {
	title := c.PostForm("title")
	if title == "" {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_TITLE", "title is required")
		return entity.Metadata{}, false
	}

	shotDate, err := time.Parse(shotDateLayout, c.PostForm("shot_date"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_DATE", "shot_date must be YYYY-MM-DD")
		return entity.Metadata{}, false
	}

	return entity.Metadata{
		Title:    title,
		Caption:  c.PostForm("caption"),
		Tags:     c.PostFormArray("tags"),
		ShotDate: shotDate,
	}, true
}

func (h *AdminHandler) handlePhotoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrPhotoNotFound):
		httputil.ErrorWithCode(c, http.StatusNotFound, "NOT_FOUND", "photo not found")
	default:
		httputil.InternalError(c)
	}
}
