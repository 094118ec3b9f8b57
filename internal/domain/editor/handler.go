package editor

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kizuna/internal/domain/draft"
	"kizuna/internal/domain/i18n"
	"kizuna/internal/domain/plan"
	"kizuna/internal/pkg/response"
	"kizuna/internal/pkg/validator"
)

type Handler struct {
	manager *draft.Manager
	service *Service
}

func NewHandler(manager *draft.Manager, service *Service) *Handler {
	return &Handler{manager: manager, service: service}
}

// GetOptions godoc
// @Summary Editor options with lock state for the session plan
// @Tags Editor
// @Produce json
// @Param lang query string false "pt or jp"
// @Success 200 {object} plan.OptionsResponse
// @Router /editor/options [get]
func (h *Handler) GetOptions(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}
	d, err := store.Load(c.Request.Context())
	if err != nil {
		h.writeError(c, lang, err)
		return
	}
	response.Success(c, http.StatusOK, plan.OptionsFor(lang, d.Plan))
}

// UpdateFields godoc
// @Summary Update draft fields
// @Description Partial update of text, date and option fields. Locked options are rejected.
// @Tags Editor
// @Accept json
// @Produce json
// @Param request body FieldsRequest true "Fields to change"
// @Success 200 {object} draft.CoupleDraft
// @Failure 403 {object} response.Response
// @Failure 422 {object} response.Response
// @Router /editor [patch]
func (h *Handler) UpdateFields(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}

	var req FieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Validation failed", errs)
		return
	}

	d, err := h.service.UpdateFields(c.Request.Context(), store, req)
	if err != nil {
		h.writeError(c, lang, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// UploadImages godoc
// @Summary Replace the gallery
// @Description Multipart field "images". Files past the plan limit are dropped with a notice.
// @Tags Editor
// @Accept multipart/form-data
// @Produce json
// @Success 200 {object} UploadResult
// @Failure 413 {object} response.Response
// @Router /editor/images [post]
func (h *Handler) UploadImages(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid multipart form")
		return
	}
	headers := form.File["images"]
	files := make([]Upload, 0, len(headers))
	for _, fh := range headers {
		fh := fh
		files = append(files, Upload{
			Filename: fh.Filename,
			Size:     fh.Size,
			Open:     func() (io.ReadCloser, error) { return fh.Open() },
		})
	}

	res, err := h.service.UploadImages(c.Request.Context(), store, lang, files)
	if err != nil {
		h.writeError(c, lang, err)
		return
	}
	if res.Notice != "" {
		response.SuccessWithNotice(c, http.StatusOK, res, res.Notice)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// AddVideo godoc
// @Summary Append an empty video slot
// @Tags Editor
// @Produce json
// @Failure 403 {object} response.Response
// @Router /editor/videos [post]
func (h *Handler) AddVideo(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}
	d, err := h.service.AddVideo(c.Request.Context(), store)
	if err != nil {
		h.writeError(c, lang, err)
		return
	}
	response.Success(c, http.StatusCreated, d)
}

// UpdateVideo godoc
// @Summary Set the URL of a video slot
// @Tags Editor
// @Accept json
// @Produce json
// @Param index path int true "Position"
// @Param request body VideoRequest true "URL"
// @Router /editor/videos/{index} [put]
func (h *Handler) UpdateVideo(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid video index")
		return
	}

	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Validation failed", errs)
		return
	}

	d, err := h.service.UpdateVideo(c.Request.Context(), store, index, req.URL)
	if err != nil {
		h.writeError(c, lang, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// RemoveVideo godoc
// @Summary Remove a video slot
// @Tags Editor
// @Produce json
// @Param index path int true "Position"
// @Router /editor/videos/{index} [delete]
func (h *Handler) RemoveVideo(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid video index")
		return
	}
	d, err := h.service.RemoveVideo(c.Request.Context(), store, index)
	if err != nil {
		h.writeError(c, lang, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// AddMilestone godoc
// @Summary Append an empty milestone
// @Tags Editor
// @Produce json
// @Failure 403 {object} response.Response
// @Router /editor/milestones [post]
func (h *Handler) AddMilestone(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}
	d, m, err := h.service.AddMilestone(c.Request.Context(), store)
	if err != nil {
		h.writeError(c, lang, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"draft": d, "milestone": m})
}

// UpdateMilestone godoc
// @Summary Edit a milestone
// @Tags Editor
// @Accept json
// @Produce json
// @Param id path string true "Milestone ID"
// @Param request body MilestoneRequest true "Fields"
// @Router /editor/milestones/{id} [patch]
func (h *Handler) UpdateMilestone(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}

	var req MilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Validation failed", errs)
		return
	}

	d, err := h.service.UpdateMilestone(c.Request.Context(), store, c.Param("id"), req)
	if err != nil {
		h.writeError(c, lang, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// RemoveMilestone godoc
// @Summary Remove a milestone
// @Tags Editor
// @Produce json
// @Param id path string true "Milestone ID"
// @Router /editor/milestones/{id} [delete]
func (h *Handler) RemoveMilestone(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}
	d, err := h.service.RemoveMilestone(c.Request.Context(), store, c.Param("id"))
	if err != nil {
		h.writeError(c, lang, err)
		return
	}
	response.Success(c, http.StatusOK, d)
}

// CheckDomain godoc
// @Summary Check custom domain availability
// @Description Runs the full status sequence and returns the outcome. Infinity only.
// @Tags Editor
// @Accept json
// @Produce json
// @Param request body DomainCheckRequest true "Query"
// @Success 200 {object} DomainResult
// @Router /editor/domain/check [post]
func (h *Handler) CheckDomain(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}

	var req DomainCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Invalid JSON body")
		return
	}
	if errs := validator.Validate(&req); errs != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, response.CodeValidation, "Validation failed", errs)
		return
	}

	res, err := h.service.CheckDomain(c.Request.Context(), store, lang, req.Query, nil)
	if err != nil {
		h.writeError(c, lang, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}

// StreamDomainCheck godoc
// @Summary Check custom domain availability with live status
// @Description Server-sent events: "progress" for each step, then "result" or "error".
// @Tags Editor
// @Produce text/event-stream
// @Param q query string true "Query"
// @Router /editor/domain/check/stream [get]
func (h *Handler) StreamDomainCheck(c *gin.Context) {
	store, lang, ok := h.session(c)
	if !ok {
		return
	}
	query := c.Query("q")
	if query == "" {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, "Missing query")
		return
	}

	started := false
	res, err := h.service.CheckDomain(c.Request.Context(), store, lang, query, func(p DomainProgress) {
		if !started {
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			started = true
		}
		c.SSEvent("progress", p)
		c.Writer.Flush()
	})
	if err != nil {
		if !started {
			h.writeError(c, lang, err)
			return
		}
		_ = c.Error(err)
		c.SSEvent("error", gin.H{"message": err.Error()})
		c.Writer.Flush()
		return
	}
	c.SSEvent("result", res)
	c.Writer.Flush()
}

func (h *Handler) session(c *gin.Context) (*draft.Store, i18n.Language, bool) {
	store, err := h.manager.FromContext(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
		return nil, "", false
	}
	lang, ok := i18n.Parse(c.Query("lang"))
	if !ok {
		lang, err = store.Language(c.Request.Context())
		if err != nil {
			lang = i18n.Default
		}
	}
	return store, lang, true
}

func (h *Handler) writeError(c *gin.Context, lang i18n.Language, err error) {
	var lockedErr *LockedError
	var limitErr *LimitError
	switch {
	case errors.As(err, &lockedErr):
		response.ErrorWithDetails(c, http.StatusForbidden, response.CodeFeatureLocked, err.Error(), gin.H{
			"feature":  lockedErr.Feature,
			"plan":     lockedErr.PlanName,
			"required": lockedErr.Required,
		})
	case errors.As(err, &limitErr):
		response.ErrorWithDetails(c, http.StatusForbidden, response.CodeLimitReached, i18n.For(lang).VideoLimitReached, gin.H{
			"current":   limitErr.Current,
			"limit":     limitErr.Limit,
			"plan":      limitErr.PlanName,
			"upgradeTo": limitErr.UpgradeTo,
		})
	case errors.Is(err, ErrVideoIndex), errors.Is(err, ErrMilestoneNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, ErrFileTooLarge):
		response.Error(c, http.StatusRequestEntityTooLarge, response.CodeInvalidInput, err.Error())
	case errors.Is(err, ErrInvalidOption), errors.Is(err, ErrInvalidDomain), errors.Is(err, ErrUnsupportedImage):
		response.Error(c, http.StatusUnprocessableEntity, response.CodeValidation, err.Error())
	case errors.Is(err, ErrNoFiles):
		response.Error(c, http.StatusBadRequest, response.CodeInvalidInput, err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Failed to update draft")
	}
}
