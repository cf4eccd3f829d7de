package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/optima_web/internal/leadform"
	"github.com/Alijeyrad/optima_web/internal/service/demo"
)

type DemoHandler struct {
	svc demo.Service
}

func NewDemoHandler(svc demo.Service) *DemoHandler {
	return &DemoHandler{svc: svc}
}

func mapDemoError(c fiber.Ctx, err error, fields leadform.FieldErrors) error {
	switch {
	case errors.Is(err, demo.ErrInvalidDraft):
		return unprocessable(c, demo.ErrInvalidDraft.Error(), fields)
	default:
		return internalError(c, demo.ErrRelayFailed.Error())
	}
}

// POST /api/v1/demo-requests
func (h *DemoHandler) Submit(c fiber.Ctx) error {
	var draft leadform.Draft
	if err := c.Bind().JSON(&draft); err != nil {
		return badRequest(c, "invalid request body")
	}

	if _, fields, err := h.svc.Submit(c.Context(), draft); err != nil {
		return mapDemoError(c, err, fields)
	}
	return created(c)
}
