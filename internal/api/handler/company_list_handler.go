package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/buhgalterija/backoffice/internal/core/domain"
	"github.com/buhgalterija/backoffice/internal/core/ports"
	"github.com/buhgalterija/backoffice/internal/core/service"
)

// CompanyListHandler serves POST /companies/list for the upstream API.
type CompanyListHandler struct {
	catalog   ports.Catalog
	validator *service.Validator
	log       zerolog.Logger
}

func NewCompanyListHandler(catalog ports.Catalog, validator *service.Validator, log zerolog.Logger) *CompanyListHandler {
	return &CompanyListHandler{catalog: catalog, validator: validator, log: log}
}

// List returns the catalog companies filtered by status and responsible
// accountant, in the requested order.
//
// @Summary      List companies
// @Tags         upstream
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      domain.CompanyListRequest  false  "Filters"
// @Success      200   {array}   domain.Company
// @Failure      400   {string}  string
// @Failure      401   {string}  string
// @Router       /companies/list [post]
func (h *CompanyListHandler) List(c echo.Context) error {
	var req domain.CompanyListRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return c.String(http.StatusBadRequest, "invalid payload")
		}
	}
	if err := h.validator.Validate(req); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			return c.String(http.StatusBadRequest, ve.Message)
		}
		return c.String(http.StatusBadRequest, err.Error())
	}

	all, err := h.catalog.Companies(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list companies failed")
		return c.String(http.StatusInternalServerError, "internal server error")
	}

	filter := service.CompanyFilter{
		Status:       req.Status,
		AccountantID: req.ResponsibleID,
		Sort:         req.Sort,
	}
	items := service.SortCompanies(service.FilterCompanies(all, filter), filter.SortOrDefault())
	if items == nil {
		items = []domain.Company{}
	}
	return c.JSON(http.StatusOK, items)
}
