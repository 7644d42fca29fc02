package server

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/manav03panchal/clubportal/internal/board"
	"github.com/manav03panchal/clubportal/internal/errors"
	"github.com/manav03panchal/clubportal/internal/export"
	"github.com/manav03panchal/clubportal/internal/logging"
	"github.com/manav03panchal/clubportal/internal/model"
	"github.com/manav03panchal/clubportal/internal/output"
	"github.com/manav03panchal/clubportal/internal/parser"
	"github.com/manav03panchal/clubportal/internal/storage"
	"github.com/manav03panchal/clubportal/internal/validate"
)

// APIHandler holds the dependencies for the API handlers.
type APIHandler struct {
	Ledger  *storage.AttendanceLedger
	Tracker *storage.ProjectTracker
	Clock   model.Clock
	Metrics *Metrics
	Health  *HealthChecker
}

// NewAPIHandler creates a new APIHandler. Health reports one check per table.
func NewAPIHandler(ledger *storage.AttendanceLedger, tracker *storage.ProjectTracker, clock model.Clock) *APIHandler {
	health := NewHealthChecker("")
	health.AddCheck("attendance", func() error {
		_, err := ledger.Load()
		return err
	})
	health.AddCheck("projects", func() error {
		_, err := tracker.Load()
		return err
	})

	return &APIHandler{
		Ledger:  ledger,
		Tracker: tracker,
		Clock:   clock,
		Metrics: NewMetrics(),
		Health:  health,
	}
}

// CheckInRequest is the body of POST /api/attendance.
type CheckInRequest struct {
	Name string `json:"name" form:"name"`
}

// ProjectRequest is the body of POST /api/projects.
type ProjectRequest struct {
	Project   string `json:"project" form:"project"`
	Owner     string `json:"owner" form:"owner"`
	Status    string `json:"status" form:"status"`
	StartDate string `json:"start_date" form:"start_date"`
	DueDate   string `json:"due_date" form:"due_date"`
}

// PingHandler handles GET /api/ping.
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

// GetHealth handles GET /api/health. An unreadable table answers 503.
func (h *APIHandler) GetHealth(c *gin.Context) {
	status := h.Health.Check()
	code := http.StatusOK
	if status.Status != StatusHealthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}

// GetMetrics handles GET /api/metrics.
func (h *APIHandler) GetMetrics(c *gin.Context) {
	c.JSON(http.StatusOK, h.Metrics.Snapshot())
}

// GetStats handles GET /api/stats.
func (h *APIHandler) GetStats(c *gin.Context) {
	attendance, err := h.Ledger.Load()
	if err != nil {
		h.respondError(c, err)
		return
	}
	projects, err := h.Tracker.Load()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board.QuickStats(attendance, projects))
}

// --- Attendance Handlers ---

// GetAttendance handles GET /api/attendance.
func (h *APIHandler) GetAttendance(c *gin.Context) {
	records, err := h.Ledger.Load()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.AttendanceResponse{
		Records:    output.NewAttendanceOutputs(records),
		TotalCount: len(records),
	})
}

// GetMemberCounts handles GET /api/attendance/members.
func (h *APIHandler) GetMemberCounts(c *gin.Context) {
	records, err := h.Ledger.Load()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board.MemberCounts(records))
}

// MarkAttendance handles POST /api/attendance with a JSON or form body.
func (h *APIHandler) MarkAttendance(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, output.ErrorResponse{
			Status: "error",
			Error:  "Invalid request body: " + err.Error(),
		})
		return
	}

	rec, err := h.Ledger.Append(req.Name)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.Metrics.RecordCheckIn(h.Clock())

	c.JSON(http.StatusCreated, output.CheckInResponse{
		Status: "present",
		Record: output.NewAttendanceOutput(rec),
	})
}

// --- Project Handlers ---

// GetProjects handles GET /api/projects.
func (h *APIHandler) GetProjects(c *gin.Context) {
	projects, err := h.Tracker.Load()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.NewProjectsResponse(projects))
}

// GetProjectSummary handles GET /api/projects/summary.
func (h *APIHandler) GetProjectSummary(c *gin.Context) {
	projects, err := h.Tracker.Load()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, output.NewSummaryResponse(projects))
}

// AddProject handles POST /api/projects with a JSON or form body.
func (h *APIHandler) AddProject(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, output.ErrorResponse{
			Status: "error",
			Error:  "Invalid request body: " + err.Error(),
		})
		return
	}

	in, err := h.projectInput(req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	rec, err := h.Tracker.Append(in)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.Metrics.RecordProjectAdded()

	c.JSON(http.StatusCreated, output.ProjectAddedResponse{
		Status:  "added",
		Project: output.NewProjectOutput(rec),
	})
}

func (h *APIHandler) projectInput(req ProjectRequest) (storage.ProjectInput, error) {
	status, err := parser.ParseStatus(req.Status)
	if err != nil {
		return storage.ProjectInput{}, err
	}
	now := h.Clock()
	start, err := parser.ParseDate("start_date", req.StartDate, now)
	if err != nil {
		return storage.ProjectInput{}, err
	}
	due, err := parser.ParseDate("due_date", req.DueDate, now)
	if err != nil {
		return storage.ProjectInput{}, err
	}
	return storage.ProjectInput{
		Name:      req.Project,
		Owner:     req.Owner,
		Status:    status,
		StartDate: start,
		DueDate:   due,
	}, nil
}

// --- Import / Export Handlers ---

// ImportAttendance handles POST /api/import/attendance with an xlsx upload
// in the "file" form field.
func (h *APIHandler) ImportAttendance(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, output.ErrorResponse{
			Status: "error",
			Error:  "Error retrieving uploaded file: " + err.Error(),
		})
		return
	}
	defer file.Close()

	source := validate.SafeFilename(header.Filename)
	logging.InfoContext(c.Request.Context(), "attendance import received", logging.KeyPath, source)

	records, err := export.ReadAttendanceXLSX(file, h.Clock())
	if err != nil {
		h.respondError(c, errors.NewUserErrorWithField("file", source, err.Error(),
			"Upload an .xlsx workbook with Name, Date and Time columns."))
		return
	}
	imported, err := h.Ledger.AppendMany(records)
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.Metrics.RecordImport(imported)

	c.JSON(http.StatusOK, gin.H{
		"message":  "Import successful",
		"imported": imported,
	})
}

// Export handles GET /api/export/:table?format=csv|json|xlsx.
func (h *APIHandler) Export(c *gin.Context) {
	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatCSV)))
	if err != nil {
		h.respondError(c, err)
		return
	}

	var sheet export.Sheet
	switch c.Param("table") {
	case "attendance":
		records, err := h.Ledger.Load()
		if err != nil {
			h.respondError(c, err)
			return
		}
		sheet = export.AttendanceSheet(records)
	case "projects":
		projects, err := h.Tracker.Load()
		if err != nil {
			h.respondError(c, err)
			return
		}
		sheet = export.ProjectSheet(projects)
	default:
		c.JSON(http.StatusNotFound, output.ErrorResponse{Status: "error", Error: "Unknown table"})
		return
	}

	contentType := contentTypes[format]
	filename := fmt.Sprintf("%s.%s", c.Param("table"), format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, format, sheet, h.Clock()); err != nil {
		logging.ErrorContext(c.Request.Context(), "export failed", logging.KeyError, err)
	}
}

var contentTypes = map[export.Format]string{
	export.FormatCSV:  "text/csv",
	export.FormatJSON: "application/json",
	export.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
}

// respondError maps an error onto a status code: user mistakes are 400 with
// the user-facing message, everything else is 500.
func (h *APIHandler) respondError(c *gin.Context, err error) {
	var tpe *parser.TimeParseError
	if stderrors.As(err, &tpe) {
		err = tpe.ToUserError()
	}
	h.Metrics.RecordError(errors.Classify(err).String(), err)

	if ue, ok := errors.AsUserError(err); ok {
		c.JSON(http.StatusBadRequest, output.ErrorResponse{
			Status:  "error",
			Error:   ue.Error(),
			Message: ue.Suggestion,
		})
		return
	}

	logging.ErrorContext(c.Request.Context(), "request failed", logging.KeyError, err)
	c.JSON(http.StatusInternalServerError, output.ErrorResponse{
		Status:  "error",
		Error:   "Internal error",
		Message: errors.GetSuggestion(err),
	})
}
