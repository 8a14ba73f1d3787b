package builder

import (
	"bytes"
	"errors"
	"mime"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/cache"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/server/respond"
	"resume-builder/internal/shared/storage/object"
	"resume-builder/internal/shared/telemetry"
	"resume-builder/internal/shared/util"
	"resume-builder/resume/model"
	"resume-builder/resume/render"
)

const defaultMaxBody = 1 << 20

// Handler serves the résumé preview API. It holds no per-user state; every
// request carries the full record. Cache is optional.
type Handler struct {
	Renderers    *render.Registry
	Store        object.ObjectStore
	Cache        cache.DocumentCache
	MaxBodyBytes int64
}

// NewHandler constructs a Handler. A nil registry falls back to render.Default.
func NewHandler(renderers *render.Registry, store object.ObjectStore, maxBodyBytes int64) *Handler {
	if renderers == nil {
		renderers = render.Default()
	}
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBody
	}
	return &Handler{Renderers: renderers, Store: store, MaxBodyBytes: maxBodyBytes}
}

// RegisterRoutes attaches builder routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/sample", h.sample)
	rg.GET("/default", h.defaults)
	rg.GET("/renderers", h.renderers)
	rg.POST("/render", h.render)
	rg.POST("/download", h.download)
	rg.POST("/required", h.required)
	if h.Store != nil {
		rg.POST("/export", h.export)
		rg.GET("/export/:key", h.fetchExport)
	}
}

func (h *Handler) sample(c *gin.Context) {
	respond.OK(c, model.Sample())
}

func (h *Handler) defaults(c *gin.Context) {
	respond.OK(c, model.Default())
}

func (h *Handler) renderers(c *gin.Context) {
	respond.OK(c, gin.H{"renderers": h.Renderers.List()})
}

func (h *Handler) render(c *gin.Context) {
	data, ok := h.bind(c)
	if !ok {
		return
	}
	format := strings.TrimSpace(c.DefaultQuery("format", "html"))
	r, err := h.Renderers.Get(format)
	if errors.Is(err, render.ErrRendererNotFound) {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unknown format", gin.H{"available": h.Renderers.List()})
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "renderer lookup failed", nil)
		return
	}
	body, ok := h.renderWith(c, r, data)
	if !ok {
		return
	}
	respond.Document(c, r.ContentType(), body)
}

func (h *Handler) download(c *gin.Context) {
	data, ok := h.bind(c)
	if !ok {
		return
	}
	r, err := h.Renderers.Get("html")
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "html renderer not registered", nil)
		return
	}
	body, ok := h.renderWith(c, r, data)
	if !ok {
		return
	}
	metrics.DownloadsTotal.Inc()
	setAttachment(c, render.FileName(data.Name))
	respond.Document(c, render.DocumentContentType, body)
}

func (h *Handler) export(c *gin.Context) {
	data, ok := h.bind(c)
	if !ok {
		return
	}
	r, err := h.Renderers.Get("html")
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal", "html renderer not registered", nil)
		return
	}
	body, ok := h.renderWith(c, r, data)
	if !ok {
		return
	}
	key, size, mimeType, err := h.Store.Save(c.Request.Context(), render.FileName(data.Name), bytes.NewReader(body))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to export document", nil)
		return
	}
	respond.JSON(c, http.StatusCreated, gin.H{
		"storageKey": key,
		"sizeBytes":  size,
		"mimeType":   mimeType,
	})
}

func (h *Handler) fetchExport(c *gin.Context) {
	key := c.Param("key")
	if clean, err := util.SanitizeFileName(key); err != nil || clean != key {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid storage key", nil)
		return
	}
	rc, err := h.Store.Open(c.Request.Context(), key)
	if errors.Is(err, object.ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "export not found", nil)
		return
	}
	if err != nil {
		telemetry.Error("export.open_failed", map[string]any{"key": key, "error": err.Error()})
		respond.Error(c, http.StatusInternalServerError, "export_failed", "failed to read export", nil)
		return
	}
	defer rc.Close()

	contentType := mime.TypeByExtension(filepath.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	setAttachment(c, key)
	c.DataFromReader(http.StatusOK, -1, contentType, rc, nil)
}

func (h *Handler) required(c *gin.Context) {
	data, ok := h.bind(c)
	if !ok {
		return
	}
	missing := model.MissingRequired(data)
	if missing == nil {
		missing = []string{}
	}
	respond.OK(c, gin.H{"missing": missing})
}

// setAttachment sets Content-Disposition for fileName. Non-ASCII names are
// sent in the RFC 2231 filename* form, so the page reads X-Filename instead.
func setAttachment(c *gin.Context, fileName string) {
	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	c.Header("X-Filename", url.PathEscape(fileName))
}

func (h *Handler) bind(c *gin.Context) (model.ResumeData, bool) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxBodyBytes)
	data, err := model.Load(c.Request.Body, model.FormatJSON)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "payload_too_large", "request body too large", nil)
			return model.ResumeData{}, false
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return model.ResumeData{}, false
	}
	return data, true
}

func (h *Handler) renderWith(c *gin.Context, r render.Renderer, data model.ResumeData) ([]byte, bool) {
	ctx := c.Request.Context()
	c.Set("renderer", r.Name())

	key := h.cacheKey(r, data)
	if key != "" {
		doc, ok, err := h.Cache.Get(ctx, key)
		if err != nil {
			telemetry.Warn("render.cache_get_failed", map[string]any{"renderer": r.Name(), "error": err.Error()})
		} else if ok {
			metrics.RenderCacheHits.WithLabelValues(r.Name()).Inc()
			return doc, true
		}
	}

	start := time.Now()
	body, err := r.Render(ctx, data)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "render_failed", "failed to render document", nil)
		return nil, false
	}
	metrics.ObserveRender(r.Name(), time.Since(start).Seconds())

	if key != "" {
		if err := h.Cache.Set(ctx, key, body); err != nil {
			telemetry.Warn("render.cache_set_failed", map[string]any{"renderer": r.Name(), "error": err.Error()})
		}
	}
	return body, true
}

func (h *Handler) cacheKey(r render.Renderer, data model.ResumeData) string {
	if h.Cache == nil {
		return ""
	}
	hash, err := util.HashValue(data)
	if err != nil {
		return ""
	}
	return r.Name() + ":" + hash
}
