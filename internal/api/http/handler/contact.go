package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Alijeyrad/optima_web/internal/service/contact"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

func mapContactError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, contact.ErrInvalidMessage):
		return badRequest(c, err.Error())
	case errors.Is(err, contact.ErrRelayFailed):
		return internalError(c, contact.ErrRelayFailed.Error())
	default:
		return internalError(c, "internal server error")
	}
}

// POST /api/contact
func (h *ContactHandler) Submit(c fiber.Ctx) error {
	var req contact.Message
	if err := c.Bind().JSON(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	if err := h.svc.Submit(c.Context(), req); err != nil {
		return mapContactError(c, err)
	}
	return ok(c)
}
