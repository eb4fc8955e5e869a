package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/photolog-dev/photolog-backend/internal/adapter/handler/dto/request"
	"github.com/photolog-dev/photolog-backend/internal/adapter/handler/dto/response"
	"github.com/photolog-dev/photolog-backend/internal/pkg/httputil"
	"github.com/photolog-dev/photolog-backend/internal/pkg/pagination"
)

// FeedHandler serves the public, unauthenticated feed.
type FeedHandler struct {
	gallerySvc GalleryService
}

func NewFeedHandler(gallerySvc GalleryService) *FeedHandler {
	return &FeedHandler{gallerySvc: gallerySvc}
}

func (h *FeedHandler) List(c *gin.Context) {
	var req request.ListFeedRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	window := pagination.NewWindow(req.Offset, req.Limit)

	photos, err := h.gallerySvc.ListPublic(c.Request.Context(), window.Offset, window.Limit)
	if err != nil {
		httputil.InternalError(c)
		return
	}

	httputil.OK(c, response.FeedResponse{
		Photos: response.PhotosFromEntities(photos),
	})
}
