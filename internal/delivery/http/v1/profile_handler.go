package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal/internal/delivery/http/response"
	"recruitment-portal/internal/domain"
)

type ProfileHandler struct {
	authUC domain.AuthUsecase
}

func NewProfileHandler(protected *gin.RouterGroup, authUC domain.AuthUsecase) {
	handler := &ProfileHandler{authUC: authUC}
	protected.PUT("/profile", handler.UpdateProfile)
}

// UpdateProfile godoc
// @Summary      Update profile
// @Description  Changes any of username, email, personal number or password. Empty fields are left unchanged.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ProfileUpdate  true  "Fields to change"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req domain.ProfileUpdate
	if !bindJSON(c, &req) {
		return
	}

	if err := h.authUC.UpdateUserProfile(c.Request.Context(), currentUserID(c), req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", nil)
}
