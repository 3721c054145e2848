package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucShop "github.com/BruksfildServices01/barber-booking/internal/usecase/barbershop"
)

const maxLogoBytes = 5 << 20

type ServiceTypeHandler struct {
	create *ucShop.CreateServiceType
	get    *ucShop.GetServiceType
	list   *ucShop.ListServiceTypes
	logo   *ucShop.UploadLogo
}

func NewServiceTypeHandler(
	create *ucShop.CreateServiceType,
	get *ucShop.GetServiceType,
	list *ucShop.ListServiceTypes,
	logo *ucShop.UploadLogo,
) *ServiceTypeHandler {
	return &ServiceTypeHandler{create: create, get: get, list: list, logo: logo}
}

type serviceTypeRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

func (h *ServiceTypeHandler) Create(c *gin.Context) {
	var req serviceTypeRequest
	if !bindJSON(c, &req) {
		return
	}

	st, err := h.create.Execute(c.Request.Context(), caller(c), ucShop.ServiceTypeInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.Created(c, "serviceType", dto.ServiceType(st))
}

func (h *ServiceTypeHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	st, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "serviceType", dto.ServiceType(st))
}

func (h *ServiceTypeHandler) List(c *gin.Context) {
	types, err := h.list.Execute(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]*dto.ServiceTypeDTO, 0, len(types))
	for i := range types {
		out = append(out, dto.ServiceType(&types[i]))
	}
	httpresp.List(c, "serviceTypes", out)
}

// UploadLogo expects a multipart form with the image in field "logo".
func (h *ServiceTypeHandler) UploadLogo(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxLogoBytes)

	file, err := c.FormFile("logo")
	if err != nil {
		_ = c.Error(httperr.BadRequest("invalid_image", "multipart field \"logo\" is required (max 5MB)"))
		return
	}

	f, err := file.Open()
	if err != nil {
		_ = c.Error(err)
		return
	}
	defer f.Close()

	st, err := h.logo.Execute(c.Request.Context(), caller(c), id, f)
	if err != nil {
		_ = c.Error(err)
		return
	}
	httpresp.OK(c, "serviceType", dto.ServiceType(st))
}
