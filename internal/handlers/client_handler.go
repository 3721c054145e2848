package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ClientHandler serves the booking side: a user taking or releasing a slot.
type ClientHandler struct {
	accept *ucAppointment.AcceptAppointment
	cancel *ucAppointment.CancelAppointment
	list   *ucAppointment.ListAppointments
}

func NewClientHandler(
	accept *ucAppointment.AcceptAppointment,
	cancel *ucAppointment.CancelAppointment,
	list *ucAppointment.ListAppointments,
) *ClientHandler {
	return &ClientHandler{accept: accept, cancel: cancel, list: list}
}

func (h *ClientHandler) Accept(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.accept.Execute(c.Request.Context(), caller(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "appointment", dto.Appointment(ap, true))
}

func (h *ClientHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), caller(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "appointment", dto.Appointment(ap, true))
}

// List returns the caller's accepted appointments.
func (h *ClientHandler) List(c *gin.Context) {
	id := caller(c)

	apps, err := h.list.Execute(c.Request.Context(), domain.Filter{ClientID: &id.UserID})
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.List(c, "appointments", dto.Appointments(apps, true))
}
