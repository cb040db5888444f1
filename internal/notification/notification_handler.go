package notification

import (
	"net/http"
	"strconv"

	"go-ems/internal/shared/apperror"
	"go-ems/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Dispatch menerima notifikasi dari service lain lewat internal key,
// atau dari caller terautentikasi dengan company dari token.
func (h *Handler) Dispatch(c *gin.Context) {
	var req NotifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Input tidak valid", err.Error())
		return
	}

	companyID := c.GetString("company_id")
	if companyID == "" {
		companyID = c.Query("company_id")
	}

	err := h.service.Notify(c.Request.Context(), NotifyInput{
		CompanyID:   companyID,
		EmployeeID:  req.EmployeeID,
		UserID:      req.UserID,
		Audience:    req.Audience,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		ActionURL:   req.ActionURL,
		ActionLabel: req.ActionLabel,
		Meta:        req.Meta,
	})
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"dispatched": true}, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	companyID := c.GetString("company_id")
	userID := c.GetString("user_id")

	resp, err := h.service.GetAll(c.Request.Context(), companyID, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if pageSize < 1 {
		pageSize = 20
	}

	total := int64(len(resp))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(resp) {
		start = len(resp)
	}
	if end > len(resp) {
		end = len(resp)
	}

	meta := response.NewPaginationMeta(total, page, pageSize)
	response.Success(c, http.StatusOK, resp[start:end], &meta)
}

func (h *Handler) MarkRead(c *gin.Context) {
	companyID := c.GetString("company_id")
	userID := c.GetString("user_id")
	id := c.Param("id")

	resp, err := h.service.MarkRead(c.Request.Context(), companyID, userID, id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	companyID := c.GetString("company_id")
	userID := c.GetString("user_id")

	resp, err := h.service.UnreadCount(c.Request.Context(), companyID, userID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
