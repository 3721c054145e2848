package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/domain/access"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/barbershop"
	"github.com/BruksfildServices01/barber-booking/internal/domain/lifecycle"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucShop "github.com/BruksfildServices01/barber-booking/internal/usecase/barbershop"
)

// ======================================================
// HANDLER
// ======================================================

type BarbershopHandler struct {
	create    *ucShop.CreateShop
	getMine   *ucShop.GetMyShop
	update    *ucShop.UpdateShop
	setStatus *ucShop.SetShopStatus
	get       *ucShop.GetShop
	list      *ucShop.ListShops
	audit     *audit.Logger
}

func NewBarbershopHandler(
	create *ucShop.CreateShop,
	getMine *ucShop.GetMyShop,
	update *ucShop.UpdateShop,
	setStatus *ucShop.SetShopStatus,
	get *ucShop.GetShop,
	list *ucShop.ListShops,
	auditLogger *audit.Logger,
) *BarbershopHandler {
	return &BarbershopHandler{
		create:    create,
		getMine:   getMine,
		update:    update,
		setStatus: setStatus,
		get:       get,
		list:      list,
		audit:     auditLogger,
	}
}

type shopRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

func (r shopRequest) input() ucShop.ShopInput {
	return ucShop.ShopInput{
		Name:        r.Name,
		Description: r.Description,
		Phone:       r.Phone,
		Address:     r.Address,
	}
}

// ======================================================
// OWNER
// ======================================================

// Create inserts the caller's shop, or updates the active one in place.
func (h *BarbershopHandler) Create(c *gin.Context) {
	var req shopRequest
	if !bindJSON(c, &req) {
		return
	}

	res, err := h.create.Execute(c.Request.Context(), caller(c), req.input())
	if err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusOK
	if res.Created {
		status = http.StatusCreated
	}
	c.JSON(status, gin.H{
		"barbershop": dto.Provider(res.Shop),
		"created":    res.Created,
	})
}

func (h *BarbershopHandler) GetMine(c *gin.Context) {
	shop, err := h.getMine.Execute(c.Request.Context(), caller(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "barbershop", dto.Provider(shop))
}

func (h *BarbershopHandler) Update(c *gin.Context) {
	var req shopRequest
	if !bindJSON(c, &req) {
		return
	}

	shop, err := h.update.Execute(c.Request.Context(), caller(c), req.input())
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "barbershop", dto.Provider(shop))
}

func (h *BarbershopHandler) Enable(c *gin.Context)  { h.changeStatus(c, lifecycle.ActionEnable) }
func (h *BarbershopHandler) Disable(c *gin.Context) { h.changeStatus(c, lifecycle.ActionDisable) }
func (h *BarbershopHandler) Delete(c *gin.Context)  { h.changeStatus(c, lifecycle.ActionDelete) }

func (h *BarbershopHandler) changeStatus(c *gin.Context, action lifecycle.Action) {
	shop, err := h.setStatus.Execute(c.Request.Context(), caller(c), action)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "barbershop", dto.Provider(shop))
}

// AuditLogs lists the shop's trail, newest first. Optional filters: action,
// entity, limit (max 500).
func (h *BarbershopHandler) AuditLogs(c *gin.Context) {
	id := caller(c)
	if err := access.RequireShop(id); err != nil {
		_ = c.Error(err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	logs, err := h.audit.List(c.Request.Context(), *id.ShopID, audit.Query{
		Action: c.Query("action"),
		Entity: c.Query("entity"),
		Limit:  limit,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.List(c, "auditLogs", logs)
}

// ======================================================
// PUBLIC
// ======================================================

func (h *BarbershopHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	shop, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "barbershop", dto.Provider(shop))
}

func (h *BarbershopHandler) List(c *gin.Context) {
	shops, err := h.list.Execute(c.Request.Context(), domain.ShopFilter{Query: c.Query("q")})
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]*dto.ProviderDTO, 0, len(shops))
	for i := range shops {
		out = append(out, dto.Provider(&shops[i]))
	}
	httpresp.List(c, "barbershops", out)
}
