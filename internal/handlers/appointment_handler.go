package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	update       *ucAppointment.UpdateAppointment
	setStatus    *ucAppointment.SetAppointmentStatus
	get          *ucAppointment.GetAppointment
	getOwned     *ucAppointment.GetOwnedAppointment
	list         *ucAppointment.ListAppointments
	postMessage  *ucAppointment.PostMessage
	listMessages *ucAppointment.ListMessages
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	setStatus *ucAppointment.SetAppointmentStatus,
	get *ucAppointment.GetAppointment,
	getOwned *ucAppointment.GetOwnedAppointment,
	list *ucAppointment.ListAppointments,
	postMessage *ucAppointment.PostMessage,
	listMessages *ucAppointment.ListMessages,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		update:       update,
		setStatus:    setStatus,
		get:          get,
		getOwned:     getOwned,
		list:         list,
		postMessage:  postMessage,
		listMessages: listMessages,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type createAppointmentRequest struct {
	ServiceID    uuid.UUID `json:"serviceId" binding:"required"`
	Title        *string   `json:"title"`
	Observations *string   `json:"observations"`
	StartsAt     time.Time `json:"startsAt" binding:"required"`
	EndsAt       time.Time `json:"endsAt" binding:"required"`
}

type updateAppointmentRequest struct {
	ServiceID    *uuid.UUID `json:"serviceId"`
	Title        *string    `json:"title"`
	Observations *string    `json:"observations"`
	StartsAt     *time.Time `json:"startsAt"`
	EndsAt       *time.Time `json:"endsAt"`
}

type messageRequest struct {
	Body string `json:"body" binding:"required"`
}

// ======================================================
// SHOP
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req createAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), caller(c), ucAppointment.CreateAppointmentInput{
		ServiceID:    req.ServiceID,
		Title:        req.Title,
		Observations: req.Observations,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.Created(c, "appointment", dto.Appointment(ap, true))
}

// ListMine lists the caller shop's slots, accepting the public filters
// except providerId.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	id := caller(c)
	if err := access.RequireShop(id); err != nil {
		_ = c.Error(err)
		return
	}

	filter, ok := parseFilter(c)
	if !ok {
		return
	}
	filter.ProviderID = id.ShopID

	apps, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.List(c, "appointments", dto.Appointments(apps, true))
}

func (h *AppointmentHandler) GetMine(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.getOwned.Execute(c.Request.Context(), caller(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "appointment", dto.Appointment(ap, true))
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req updateAppointmentRequest
	if !bindJSON(c, &req) {
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), caller(c), id, ucAppointment.UpdateAppointmentInput{
		ServiceID:    req.ServiceID,
		Title:        req.Title,
		Observations: req.Observations,
		StartsAt:     req.StartsAt,
		EndsAt:       req.EndsAt,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "appointment", dto.Appointment(ap, true))
}

func (h *AppointmentHandler) Enable(c *gin.Context)  { h.changeStatus(c, lifecycle.ActionEnable) }
func (h *AppointmentHandler) Disable(c *gin.Context) { h.changeStatus(c, lifecycle.ActionDisable) }
func (h *AppointmentHandler) Delete(c *gin.Context)  { h.changeStatus(c, lifecycle.ActionDelete) }

func (h *AppointmentHandler) changeStatus(c *gin.Context, action lifecycle.Action) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), caller(c), id, action)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "appointment", dto.Appointment(ap, true))
}

// ======================================================
// PUBLIC
// ======================================================

// List is the public slot search. Client contact details are never exposed.
func (h *AppointmentHandler) List(c *gin.Context) {
	filter, ok := parseFilter(c)
	if !ok {
		return
	}

	providerID, err := queryUUID(c, "providerId")
	if err != nil {
		_ = c.Error(err)
		return
	}
	filter.ProviderID = providerID

	apps, err := h.list.Execute(c.Request.Context(), filter)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.List(c, "appointments", dto.Appointments(apps, false))
}

func (h *AppointmentHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "appointment", dto.Appointment(ap, false))
}

// ======================================================
// MESSAGES
// ======================================================

func (h *AppointmentHandler) PostMessage(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req messageRequest
	if !bindJSON(c, &req) {
		return
	}

	msg, err := h.postMessage.Execute(c.Request.Context(), caller(c), id, req.Body)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.Created(c, "message", dto.Message(msg))
}

func (h *AppointmentHandler) ListMessages(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	msgs, err := h.listMessages.Execute(c.Request.Context(), caller(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.List(c, "messages", dto.Messages(msgs))
}

// ======================================================
// QUERY
// ======================================================

// parseFilter reads from, to, available, serviceId and serviceTypeId. Plain
// dates are interpreted in the zone named by tz (default UTC).
func parseFilter(c *gin.Context) (domain.Filter, bool) {
	var (
		f   domain.Filter
		err error
	)
	loc := timezone.Location(c.DefaultQuery("tz", timezone.DefaultTimezone))

	if f.From, err = queryTime(c, "from", loc, false); err != nil {
		_ = c.Error(err)
		return f, false
	}
	if f.To, err = queryTime(c, "to", loc, true); err != nil {
		_ = c.Error(err)
		return f, false
	}
	if f.Available, err = queryBool(c, "available"); err != nil {
		_ = c.Error(err)
		return f, false
	}
	if f.ServiceID, err = queryUUID(c, "serviceId"); err != nil {
		_ = c.Error(err)
		return f, false
	}
	if f.ServiceTypeID, err = queryUUID(c, "serviceTypeId"); err != nil {
		_ = c.Error(err)
		return f, false
	}
	return f, true
}
