package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal/internal/delivery/http/response"
	"recruitment-portal/internal/domain"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	profileUC     domain.ProfileUsecase
}

// NewApplicationHandler registers the applicant routes. All of them are POST
// and act on the caller's own data.
func NewApplicationHandler(protected *gin.RouterGroup, applicationUC domain.ApplicationUsecase, profileUC domain.ProfileUsecase) {
	handler := &ApplicationHandler{
		applicationUC: applicationUC,
		profileUC:     profileUC,
	}

	app := protected.Group("/application")
	{
		app.POST("/getUserDetails", handler.GetUserDetails)
		app.POST("/getApplicantProfile", handler.GetApplicantProfile)
		app.POST("/getCompetenceList", handler.GetCompetenceList)
		app.POST("/getUserCompetences", handler.GetUserCompetences)
		app.POST("/setUserCompetence", handler.SetUserCompetence)
		app.POST("/deleteUserCompetence", handler.DeleteUserCompetence)
		app.POST("/getUserAvailability", handler.GetUserAvailability)
		app.POST("/addUserAvailability", handler.AddUserAvailability)
		app.POST("/setUserAvailability", handler.SetUserAvailability)
		app.POST("/deleteUserAvailability", handler.DeleteUserAvailability)
		app.POST("/submitApplication", handler.SubmitApplication)
		app.POST("/getApplication", handler.GetApplication)
	}
}

// GetUserDetails godoc
// @Summary      Personal information
// @Tags         application
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.FullUserData}
// @Failure      401  {object}  response.Response
// @Router       /application/getUserDetails [post]
func (h *ApplicationHandler) GetUserDetails(c *gin.Context) {
	user, err := h.applicationUC.GetFullUserData(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "User details retrieved", user)
}

// GetApplicantProfile godoc
// @Summary      Everything shown on the application page
// @Tags         application
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.ApplicantProfile}
// @Failure      401  {object}  response.Response
// @Router       /application/getApplicantProfile [post]
func (h *ApplicationHandler) GetApplicantProfile(c *gin.Context) {
	profile, err := h.applicationUC.GetApplicantProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Applicant profile retrieved", profile)
}

// GetCompetenceList godoc
// @Summary      Competence catalog
// @Description  Lists every competence with its name in the requested locale, falling back to the base name.
// @Tags         application
// @Accept       json
// @Produce      json
// @Param        body  body      domain.CompetenceListRequest  true  "Locale"
// @Success      200   {object}  response.Response{data=[]domain.Competence}
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /application/getCompetenceList [post]
func (h *ApplicationHandler) GetCompetenceList(c *gin.Context) {
	var req domain.CompetenceListRequest
	if !bindJSON(c, &req) {
		return
	}

	competences, err := h.profileUC.ListCatalog(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Competences retrieved", competences)
}

// GetUserCompetences godoc
// @Summary      Caller's competences
// @Tags         application
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.UserCompetence}
// @Failure      401  {object}  response.Response
// @Router       /application/getUserCompetences [post]
func (h *ApplicationHandler) GetUserCompetences(c *gin.Context) {
	competences, err := h.profileUC.ListCompetences(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Competences retrieved", competences)
}

// SetUserCompetence godoc
// @Summary      Add or update a competence
// @Tags         application
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SetCompetenceRequest  true  "Competence and years"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /application/setUserCompetence [post]
func (h *ApplicationHandler) SetUserCompetence(c *gin.Context) {
	var req domain.SetCompetenceRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.profileUC.SetCompetence(c.Request.Context(), currentUserID(c), req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Competence saved", nil)
}

// DeleteUserCompetence godoc
// @Summary      Remove a competence
// @Tags         application
// @Accept       json
// @Produce      json
// @Param        body  body      domain.DeleteCompetenceRequest  true  "Competence profile id"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /application/deleteUserCompetence [post]
func (h *ApplicationHandler) DeleteUserCompetence(c *gin.Context) {
	var req domain.DeleteCompetenceRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.profileUC.DeleteCompetence(c.Request.Context(), currentUserID(c), req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Competence deleted", nil)
}

// GetUserAvailability godoc
// @Summary      Caller's availability periods
// @Tags         application
// @Produce      json
// @Success      200  {object}  response.Response{data=[]domain.Availability}
// @Failure      401  {object}  response.Response
// @Router       /application/getUserAvailability [post]
func (h *ApplicationHandler) GetUserAvailability(c *gin.Context) {
	periods, err := h.profileUC.ListAvailability(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Availability retrieved", periods)
}

// AddUserAvailability godoc
// @Summary      Add an availability period
// @Tags         application
// @Accept       json
// @Produce      json
// @Param        body  body      domain.AddAvailabilityRequest  true  "Date range"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /application/addUserAvailability [post]
func (h *ApplicationHandler) AddUserAvailability(c *gin.Context) {
	var req domain.AddAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	id, err := h.profileUC.AddAvailability(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Availability added", gin.H{"availabilityID": id})
}

// SetUserAvailability godoc
// @Summary      Change an availability period
// @Tags         application
// @Accept       json
// @Produce      json
// @Param        body  body      domain.SetAvailabilityRequest  true  "Period id and date range"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /application/setUserAvailability [post]
func (h *ApplicationHandler) SetUserAvailability(c *gin.Context) {
	var req domain.SetAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.profileUC.UpdateAvailability(c.Request.Context(), currentUserID(c), req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Availability updated", nil)
}

// DeleteUserAvailability godoc
// @Summary      Remove an availability period
// @Tags         application
// @Accept       json
// @Produce      json
// @Param        body  body      domain.DeleteAvailabilityRequest  true  "Period id"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /application/deleteUserAvailability [post]
func (h *ApplicationHandler) DeleteUserAvailability(c *gin.Context) {
	var req domain.DeleteAvailabilityRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.profileUC.DeleteAvailability(c.Request.Context(), currentUserID(c), req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Availability deleted", nil)
}

// SubmitApplication godoc
// @Summary      Submit an application
// @Description  Fails with 409 while the caller already has an unhandled application.
// @Tags         application
// @Produce      json
// @Success      201  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /application/submitApplication [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	id, err := h.applicationUC.RegisterApplication(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Application submitted", gin.H{"applicationID": id})
}

// GetApplication godoc
// @Summary      Caller's latest application
// @Description  The application is null when the caller never applied.
// @Tags         application
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /application/getApplication [post]
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	app, err := h.applicationUC.GetSubmittedApplication(c.Request.Context(), currentUserID(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Application retrieved", gin.H{"application": app})
}
