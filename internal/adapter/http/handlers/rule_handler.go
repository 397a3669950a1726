package handlers

import (
	"errors"
	"net/http"
	request "wastebazaar/internal/adapter/http/dto/request"
	response "wastebazaar/internal/adapter/http/dto/response"
	"wastebazaar/internal/domain/entities"
	"wastebazaar/internal/usecase"
	"wastebazaar/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRulePayload = pkg.NewDomainErrorSimple("INVALID_RULE_INPUT", "Invalid rule payload", http.StatusBadRequest)

// RuleHandler handles HTTP requests for pricing rule administration.

type RuleHandler struct {
	usecase usecase.IRuleAdminUseCase
}

func NewRuleHandler(uc usecase.IRuleAdminUseCase) *RuleHandler {
	return &RuleHandler{usecase: uc}
}

func (h *RuleHandler) CreateRule(c *gin.Context) {
	var payload request.CreateRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.CreateRule(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRule(rule))
}

func (h *RuleHandler) GetRule(c *gin.Context) {
	rule, err := h.usecase.GetRule(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRule(rule))
}

// ListRules lists rules for the required ?material_type= filter.
func (h *RuleHandler) ListRules(c *gin.Context) {
	materialType := entities.MaterialType(c.Query("material_type"))
	if !materialType.Valid() {
		appErr := pkg.NewDomainErrorSimple("UNKNOWN_MATERIAL_TYPE", "Unknown or missing material type", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	rules, err := h.usecase.ListRules(c.Request.Context(), materialType)
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRules(rules))
}

func (h *RuleHandler) UpdateRule(c *gin.Context) {
	var payload request.UpdateRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.UpdateRule(c.Request.Context(), c.Param("id"), payload.ToUpdate())
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRule(rule))
}

func (h *RuleHandler) ApproveRule(c *gin.Context) {
	var payload request.ApproveRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.ApproveRule(c.Request.Context(), c.Param("id"), payload.ApprovedBy)
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRule(rule))
}

func (h *RuleHandler) RejectRule(c *gin.Context) {
	var payload request.RejectRuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.RejectRule(c.Request.Context(), c.Param("id"), payload.Notes)
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRule(rule))
}

func mapRuleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRuleID), errors.Is(err, usecase.ErrInvalidRule), errors.Is(err, usecase.ErrInvalidMaterialType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRuleNotFound):
		return pkg.NewDomainErrorSimple("RULE_NOT_FOUND", "Rule not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
