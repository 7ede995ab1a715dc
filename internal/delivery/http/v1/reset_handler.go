package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal/internal/delivery/http/response"
	"recruitment-portal/internal/domain"
)

type ResetHandler struct {
	resetUC domain.ResetUsecase
}

func NewResetHandler(public *gin.RouterGroup, resetUC domain.ResetUsecase, limiter gin.HandlerFunc) {
	handler := &ResetHandler{resetUC: resetUC}

	reset := public.Group("/resetcredentials", limiter)
	{
		reset.POST("", handler.RequestReset)
		reset.POST("/tokenvalidation", handler.ValidateToken)
		reset.PUT("/updatecredentials", handler.UpdateCredentials)
	}
}

// RequestReset godoc
// @Summary      Request a credential reset
// @Description  Issues a one hour reset token for the account with the given email. The token is returned in the response since mail delivery is not configured.
// @Tags         resetcredentials
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ResetRequest  true  "Account email"
// @Success      200   {object}  response.Response{data=domain.IssuedResetToken}
// @Failure      400   {object}  response.Response
// @Router       /resetcredentials [post]
func (h *ResetHandler) RequestReset(c *gin.Context) {
	var req domain.ResetRequest
	if !bindJSON(c, &req) {
		return
	}

	issued, err := h.resetUC.RequestReset(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Reset token issued", issued)
}

// ValidateToken godoc
// @Summary      Check a reset token
// @Tags         resetcredentials
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ResetTokenRequest  true  "Reset token"
// @Success      200   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Router       /resetcredentials/tokenvalidation [post]
func (h *ResetHandler) ValidateToken(c *gin.Context) {
	var req domain.ResetTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetUC.ValidateResetToken(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Token valid", nil)
}

// UpdateCredentials godoc
// @Summary      Reset username and/or password
// @Description  Consumes the reset token.
// @Tags         resetcredentials
// @Accept       json
// @Produce      json
// @Param        body  body      domain.ResetCredentialsRequest  true  "Token and new credentials"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      401   {object}  response.Response
// @Failure      409   {object}  response.Response
// @Router       /resetcredentials/updatecredentials [put]
func (h *ResetHandler) UpdateCredentials(c *gin.Context) {
	var req domain.ResetCredentialsRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetUC.ResetCredentials(c.Request.Context(), req); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Credentials updated", nil)
}
