package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"recruitment-portal/internal/delivery/http/response"
	"recruitment-portal/internal/domain"
	"recruitment-portal/pkg/apperror"
)

// DefaultBoardPageSize is used when the board request carries no limit.
const DefaultBoardPageSize = 5

type AdminHandler struct {
	applicationUC domain.ApplicationUsecase
}

// NewAdminHandler registers the recruiter board routes on a group that is
// already restricted to recruiters.
func NewAdminHandler(recruiter *gin.RouterGroup, applicationUC domain.ApplicationUsecase) {
	handler := &AdminHandler{applicationUC: applicationUC}

	admin := recruiter.Group("/admin/applications")
	{
		admin.GET("", handler.ListApplications)
		admin.GET("/export", handler.ExportApplications)
		admin.PATCH("/:id", handler.TransitionStatus)
	}
}

func boardOptions(c *gin.Context) domain.BoardOptions {
	return domain.BoardOptions{
		NoCompetencesText:  c.Query("noCompetencesText"),
		NoAvailabilityText: c.Query("noAvailabilityText"),
	}
}

// ListApplications godoc
// @Summary      Board column
// @Description  One page of applications with the given status, newest first.
// @Tags         admin
// @Produce      json
// @Param        status              query     string  true   "unhandled, accepted or rejected"
// @Param        offset              query     int     false  "Rows to skip"
// @Param        limit               query     int     false  "Page size (default 5, max 100)"
// @Param        noCompetencesText   query     string  false  "Shown when an applicant lists no competences"
// @Param        noAvailabilityText  query     string  false  "Shown when an applicant lists no availability"
// @Success      200  {object}  response.Response{data=domain.ApplicationPage}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /admin/applications [get]
func (h *AdminHandler) ListApplications(c *gin.Context) {
	query := domain.BoardQuery{
		Status: domain.ApplicationStatus(c.Query("status")),
		Limit:  DefaultBoardPageSize,
	}
	// Unparseable or negative offsets start from the beginning
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil && offset > 0 {
		query.Offset = offset
	}
	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			c.Error(apperror.InvalidFormData("Limit: must be a number"))
			return
		}
		query.Limit = limit
	}

	page, err := h.applicationUC.GetApplicationsByStatus(c.Request.Context(), query, boardOptions(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applications retrieved", page)
}

// TransitionStatus godoc
// @Summary      Move an application
// @Description  Compare-and-swap on the status. Returns 409 when the application is no longer in currentStatus.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int                      true  "Application ID"
// @Param        body  body      domain.StatusTransition  true  "New and expected status"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /admin/applications/{id} [patch]
func (h *AdminHandler) TransitionStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.InvalidFormData("Invalid application ID"))
		return
	}

	var req domain.StatusTransition
	if !bindJSON(c, &req) {
		return
	}

	app, err := h.applicationUC.TransitionStatus(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Status updated", gin.H{"application": app})
}

// ExportApplications godoc
// @Summary      Export a board column
// @Description  Downloads every application with the given status as an XLSX workbook.
// @Tags         admin
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        status  query  string  true  "unhandled, accepted or rejected"
// @Success      200  {file}    file
// @Failure      400  {object}  response.Response
// @Router       /admin/applications/export [get]
func (h *AdminHandler) ExportApplications(c *gin.Context) {
	status := domain.ApplicationStatus(c.Query("status"))

	data, filename, err := h.applicationUC.ExportBoard(c.Request.Context(), status, boardOptions(c))
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
