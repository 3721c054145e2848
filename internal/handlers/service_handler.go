package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucShop "github.com/BruksfildServices01/barber-booking/internal/usecase/barbershop"
)

// ======================================================
// HANDLER
// ======================================================

type ServiceHandler struct {
	create    *ucShop.CreateService
	update    *ucShop.UpdateService
	setStatus *ucShop.SetServiceStatus
	get       *ucShop.GetService
	getOwned  *ucShop.GetOwnedService
	list      *ucShop.ListServices
}

func NewServiceHandler(
	create *ucShop.CreateService,
	update *ucShop.UpdateService,
	setStatus *ucShop.SetServiceStatus,
	get *ucShop.GetService,
	getOwned *ucShop.GetOwnedService,
	list *ucShop.ListServices,
) *ServiceHandler {
	return &ServiceHandler{
		create:    create,
		update:    update,
		setStatus: setStatus,
		get:       get,
		getOwned:  getOwned,
		list:      list,
	}
}

type serviceRequest struct {
	ServiceTypeID *uuid.UUID `json:"serviceTypeId"`
	Price         *float64   `json:"price"`
}

// ======================================================
// OWNER
// ======================================================

func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.create.Execute(c.Request.Context(), caller(c), ucShop.ServiceInput{
		ServiceTypeID: req.ServiceTypeID,
		Price:         req.Price,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.Created(c, "service", dto.Service(svc))
}

func (h *ServiceHandler) ListMine(c *gin.Context) {
	id := caller(c)
	if err := access.RequireShop(id); err != nil {
		_ = c.Error(err)
		return
	}

	services, err := h.list.Execute(c.Request.Context(), domain.ServiceFilter{ProviderID: id.ShopID})
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.List(c, "services", dto.Services(services))
}

func (h *ServiceHandler) GetMine(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	svc, err := h.getOwned.Execute(c.Request.Context(), caller(c), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "service", dto.Service(svc))
}

func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var req serviceRequest
	if !bindJSON(c, &req) {
		return
	}

	svc, err := h.update.Execute(c.Request.Context(), caller(c), id, ucShop.ServiceInput{
		ServiceTypeID: req.ServiceTypeID,
		Price:         req.Price,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "service", dto.Service(svc))
}

func (h *ServiceHandler) Enable(c *gin.Context)  { h.changeStatus(c, lifecycle.ActionEnable) }
func (h *ServiceHandler) Disable(c *gin.Context) { h.changeStatus(c, lifecycle.ActionDisable) }
func (h *ServiceHandler) Delete(c *gin.Context)  { h.changeStatus(c, lifecycle.ActionDelete) }

func (h *ServiceHandler) changeStatus(c *gin.Context, action lifecycle.Action) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	svc, err := h.setStatus.Execute(c.Request.Context(), caller(c), id, action)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "service", dto.Service(svc))
}

// ======================================================
// PUBLIC
// ======================================================

func (h *ServiceHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	svc, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "service", dto.Service(svc))
}

func (h *ServiceHandler) List(c *gin.Context) {
	providerID, err := queryUUID(c, "providerId")
	if err != nil {
		_ = c.Error(err)
		return
	}
	typeID, err := queryUUID(c, "serviceTypeId")
	if err != nil {
		_ = c.Error(err)
		return
	}

	services, err := h.list.Execute(c.Request.Context(), domain.ServiceFilter{
		ProviderID:    providerID,
		ServiceTypeID: typeID,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.List(c, "services", dto.Services(services))
}
