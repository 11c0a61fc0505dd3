package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/corepay/payments-platform/internal/core/ports"
)

// TemplateHandler handles HTTP requests for payment templates.
type TemplateHandler struct {
	service ports.TemplateService
}

func NewTemplateHandler(service ports.TemplateService) *TemplateHandler {
	return &TemplateHandler{service: service}
}

// Create handles POST /templates.
//
// @Summary      Create a payment template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTemplateRequest  true  "Template details"
// @Success      201   {object}  createTemplateResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /templates [post]
func (h *TemplateHandler) Create(c echo.Context) error {
	var req createTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	template, err := h.service.Create(c.Request().Context(), ports.CreateTemplateInput{
		Name:      req.Name,
		Content:   req.Content,
		AccountID: req.AccountID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, createTemplateResponse{
		TemplateID: template.ID,
		Name:       template.Name,
	})
}

// List handles GET /templates. An optional account_id query parameter
// restricts the listing to templates owned by that account.
//
// @Summary      List payment templates
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        account_id  query     string  false  "Filter by owning account"
// @Success      200         {object}  listTemplatesResponse
// @Failure      401         {object}  errorResponse
// @Router       /templates [get]
func (h *TemplateHandler) List(c echo.Context) error {
	templates, err := h.service.List(c.Request().Context(), c.QueryParam("account_id"))
	if err != nil {
		return err
	}

	summaries := make([]templateSummaryResponse, 0, len(templates))
	for _, tpl := range templates {
		summaries = append(summaries, templateSummaryResponse{TemplateID: tpl.ID, Name: tpl.Name})
	}

	return c.JSON(http.StatusOK, listTemplatesResponse{Templates: summaries})
}

// Get handles GET /templates/:template_id.
//
// @Summary      Get a payment template by id
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        template_id  path      string  true  "Template identifier"
// @Success      200          {object}  getTemplateResponse
// @Failure      401          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /templates/{template_id} [get]
func (h *TemplateHandler) Get(c echo.Context) error {
	template, err := h.service.Get(c.Request().Context(), c.Param("template_id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, getTemplateResponse{
		TemplateID: template.ID,
		AccountID:  template.AccountID,
		Name:       template.Name,
		Content:    template.Content,
		CreatedAt:  template.CreatedAt,
		UpdatedAt:  template.UpdatedAt,
	})
}

// Update handles PUT /templates/:template_id with a partial body.
//
// @Summary      Update a payment template
// @Tags         templates
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        template_id  path      string                 true  "Template identifier"
// @Param        body         body      updateTemplateRequest  true  "Fields to update"
// @Success      200          {object}  messageResponse
// @Failure      400          {object}  errorResponse
// @Failure      401          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /templates/{template_id} [put]
func (h *TemplateHandler) Update(c echo.Context) error {
	var req updateTemplateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	templateID := c.Param("template_id")
	if _, err := h.service.Update(c.Request().Context(), ports.UpdateTemplateInput{
		TemplateID: templateID,
		Name:       req.Name,
		Content:    req.Content,
	}); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Template with ID %s updated successfully", templateID),
	})
}

// Delete handles DELETE /templates/:template_id.
//
// @Summary      Delete a payment template
// @Tags         templates
// @Produce      json
// @Security     BearerAuth
// @Param        template_id  path      string  true  "Template identifier"
// @Success      200          {object}  messageResponse
// @Failure      401          {object}  errorResponse
// @Failure      404          {object}  errorResponse
// @Router       /templates/{template_id} [delete]
func (h *TemplateHandler) Delete(c echo.Context) error {
	templateID := c.Param("template_id")
	if err := h.service.Delete(c.Request().Context(), templateID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{
		Message: fmt.Sprintf("Template with ID %s deleted successfully", templateID),
	})
}
