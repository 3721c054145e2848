package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucUser "github.com/BruksfildServices01/barber-booking/internal/usecase/user"
)

// ======================================================
// HANDLER
// ======================================================

type UserHandler struct {
	register *ucUser.RegisterUser
	auth     *ucUser.AuthenticateUser
	validate *ucUser.ValidateToken
	forgot   *ucUser.ForgotPassword
	reset    *ucUser.ResetPassword
	me       *ucUser.GetMe
	updateMe *ucUser.UpdateMe
}

func NewUserHandler(
	register *ucUser.RegisterUser,
	auth *ucUser.AuthenticateUser,
	validate *ucUser.ValidateToken,
	forgot *ucUser.ForgotPassword,
	reset *ucUser.ResetPassword,
	me *ucUser.GetMe,
	updateMe *ucUser.UpdateMe,
) *UserHandler {
	return &UserHandler{
		register: register,
		auth:     auth,
		validate: validate,
		forgot:   forgot,
		reset:    reset,
		me:       me,
		updateMe: updateMe,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type authenticateRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type tokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type forgotRequest struct {
	Email string `json:"email" binding:"required"`
}

func authResponse(res *ucUser.AuthResult) gin.H {
	body := gin.H{
		"user":  dto.User(res.User),
		"token": res.Token,
	}
	if res.Shop != nil {
		body["barbershop"] = dto.Provider(res.Shop)
	}
	return body
}

// ======================================================
// PUBLIC
// ======================================================

func (h *UserHandler) Register(c *gin.Context) {
	var req ucUser.RegisterInput
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.register.Execute(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, authResponse(res))
}

func (h *UserHandler) Authenticate(c *gin.Context) {
	var req authenticateRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.auth.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, authResponse(res))
}

func (h *UserHandler) ValidateToken(c *gin.Context) {
	var req tokenRequest
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.validate.Execute(c.Request.Context(), req.Token)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true, "user": dto.User(u)})
}

// ForgotPassword answers 200 whether or not the email is registered.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req forgotRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.forgot.Execute(c.Request.Context(), req.Email); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "if the email is registered, a reset link has been sent"})
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req ucUser.ResetPasswordInput
	if !bindJSON(c, &req) {
		return
	}

	if err := h.reset.Execute(c.Request.Context(), req); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password updated"})
}

// ======================================================
// AUTHENTICATED
// ======================================================

func (h *UserHandler) Me(c *gin.Context) {
	id := caller(c)

	u, err := h.me.Execute(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":         dto.User(u),
		"barbershopId": id.ShopID,
	})
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var req ucUser.UpdateMeInput
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.updateMe.Execute(c.Request.Context(), caller(c), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	httpresp.OK(c, "user", dto.User(u))
}
