package handlers

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SAP-F-2025/drive-schedule-service/internal/services"
	"github.com/SAP-F-2025/drive-schedule-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type SessionHandler struct {
	BaseHandler
	service       services.SessionService
	exportService services.ExportService
}

func NewSessionHandler(service services.SessionService, exportService services.ExportService, logger utils.Logger) *SessionHandler {
	return &SessionHandler{
		BaseHandler:   NewBaseHandler(logger),
		service:       service,
		exportService: exportService,
	}
}

// CreateSession schedules a session
// @Summary Create session
// @Description Unknown learner ids are dropped. Teacher, vehicle and time range are not checked.
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body services.CreateSessionRequest true "Session"
// @Success 201 {object} models.SessionResponse
// @Failure 400 {object} ErrorResponse "Bad request"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req services.CreateSessionRequest
	if !h.bindJSON(c, &req) {
		return
	}

	h.LogRequest(c, "Creating session", "teacher_id", req.TeacherID, "learner_count", len(req.LearnerIDs))

	session, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// ListSessions lists every session with teacher and learner names resolved
// @Summary List sessions
// @Tags sessions
// @Produce json
// @Success 200 {array} models.SessionResponse
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	h.LogRequest(c, "Listing sessions")

	sessions, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// ExportSessions downloads every session as a spreadsheet
// @Summary Export sessions
// @Tags sessions
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /sessions/export [get]
func (h *SessionHandler) ExportSessions(c *gin.Context) {
	h.LogRequest(c, "Exporting sessions")

	var buf bytes.Buffer
	if err := h.exportService.ExportSessions(c.Request.Context(), &buf); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="sessions.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
