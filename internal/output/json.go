package output

import (
	"github.com/manav03panchal/clubportal/internal/board"
	"github.com/manav03panchal/clubportal/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// AttendanceOutput represents a check-in in JSON output.
type AttendanceOutput struct {
	Name string `json:"name"`
	Date string `json:"date"`
	Time string `json:"time"`
}

// NewAttendanceOutput creates an AttendanceOutput from a record.
func NewAttendanceOutput(r model.AttendanceRecord) AttendanceOutput {
	return AttendanceOutput{Name: r.Name, Date: r.DateString(), Time: r.Time}
}

// NewAttendanceOutputs converts a whole table. The result is never nil.
func NewAttendanceOutputs(records model.AttendanceTable) []AttendanceOutput {
	out := make([]AttendanceOutput, len(records))
	for i, r := range records {
		out[i] = NewAttendanceOutput(r)
	}
	return out
}

// ProjectOutput represents a project in JSON output.
type ProjectOutput struct {
	Project   string `json:"project"`
	Owner     string `json:"owner"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	DueDate   string `json:"due_date"`
}

// NewProjectOutput creates a ProjectOutput from a record.
func NewProjectOutput(p model.ProjectRecord) ProjectOutput {
	return ProjectOutput{
		Project:   p.Name,
		Owner:     p.Owner,
		Status:    p.Status.String(),
		StartDate: model.FormatDate(p.StartDate),
		DueDate:   model.FormatDate(p.DueDate),
	}
}

// NewProjectOutputs converts a whole table. The result is never nil.
func NewProjectOutputs(projects model.ProjectTable) []ProjectOutput {
	out := make([]ProjectOutput, len(projects))
	for i, p := range projects {
		out[i] = NewProjectOutput(p)
	}
	return out
}

// CheckInResponse is returned after marking attendance.
type CheckInResponse struct {
	Status string           `json:"status"`
	Record AttendanceOutput `json:"record"`
}

// AttendanceResponse represents the attendance log in JSON.
type AttendanceResponse struct {
	Records    []AttendanceOutput  `json:"records"`
	TotalCount int                 `json:"total_count"`
	Members    []board.MemberCount `json:"members,omitempty"`
}

// ProjectAddedResponse is returned after adding a project.
type ProjectAddedResponse struct {
	Status  string        `json:"status"`
	Project ProjectOutput `json:"project"`
}

// ProjectsResponse represents the partitioned project board in JSON.
type ProjectsResponse struct {
	Active    []ProjectOutput `json:"active"`
	Completed []ProjectOutput `json:"completed"`
}

// NewProjectsResponse partitions projects into a ProjectsResponse.
func NewProjectsResponse(projects model.ProjectTable) ProjectsResponse {
	active, completed := board.Partition(projects)
	return ProjectsResponse{
		Active:    NewProjectOutputs(active),
		Completed: NewProjectOutputs(completed),
	}
}

// SummaryResponse represents per-status counts in JSON.
type SummaryResponse struct {
	Statuses []board.StatusCount `json:"statuses"`
	Total    int                 `json:"total"`
}

// NewSummaryResponse builds a SummaryResponse for projects.
func NewSummaryResponse(projects model.ProjectTable) SummaryResponse {
	counts := board.Summarize(projects)
	if counts == nil {
		counts = []board.StatusCount{}
	}
	return SummaryResponse{Statuses: counts, Total: len(projects)}
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintCheckIn outputs a check-in confirmation.
func (j *JSONFormatter) PrintCheckIn(rec model.AttendanceRecord) error {
	return j.JSON(CheckInResponse{Status: "present", Record: NewAttendanceOutput(rec)})
}

// PrintProjectAdded outputs an added project.
func (j *JSONFormatter) PrintProjectAdded(p model.ProjectRecord) error {
	return j.JSON(ProjectAddedResponse{Status: "added", Project: NewProjectOutput(p)})
}

// PrintAttendance outputs the attendance log. members may be nil.
func (j *JSONFormatter) PrintAttendance(records model.AttendanceTable, members []board.MemberCount) error {
	return j.JSON(AttendanceResponse{
		Records:    NewAttendanceOutputs(records),
		TotalCount: len(records),
		Members:    members,
	})
}

// PrintProjects outputs the project board.
func (j *JSONFormatter) PrintProjects(projects model.ProjectTable) error {
	return j.JSON(NewProjectsResponse(projects))
}

// PrintSummary outputs per-status counts.
func (j *JSONFormatter) PrintSummary(projects model.ProjectTable) error {
	return j.JSON(NewSummaryResponse(projects))
}

// PrintStats outputs quick stats.
func (j *JSONFormatter) PrintStats(s board.Stats) error {
	return j.JSON(s)
}

// PrintError outputs an error in JSON format.
func (j *JSONFormatter) PrintError(status, errMsg, message string) error {
	return j.JSON(ErrorResponse{
		Status:  status,
		Error:   errMsg,
		Message: message,
	})
}

// ImportResponse is returned after a spreadsheet import.
type ImportResponse struct {
	Status   string `json:"status"`
	Imported int    `json:"imported"`
	Source   string `json:"source"`
}

// PrintImported outputs the result of an import.
func (j *JSONFormatter) PrintImported(source string, n int) error {
	return j.JSON(ImportResponse{Status: "imported", Imported: n, Source: source})
}

// ExportResponse is returned after an export written to a file.
type ExportResponse struct {
	Status string `json:"status"`
	Table  string `json:"table"`
	Format string `json:"format"`
	Path   string `json:"path"`
	Count  int    `json:"count"`
}

// PrintExported outputs the result of an export written to path.
func (j *JSONFormatter) PrintExported(table, format, path string, count int) error {
	return j.JSON(ExportResponse{Status: "exported", Table: table, Format: format, Path: path, Count: count})
}
