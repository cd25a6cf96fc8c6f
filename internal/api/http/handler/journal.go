package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nidohealth/nido_backend/internal/api/http/middleware"
	"github.com/nidohealth/nido_backend/internal/service/journal"
)

type JournalHandler struct {
	svc journal.Service
}

func NewJournalHandler(svc journal.Service) *JournalHandler {
	return &JournalHandler{svc: svc}
}

// POST /journal
func (h *JournalHandler) Create(c fiber.Ctx) error {
	userID, valid := middleware.UserIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Mood int    `json:"mood"`
		Note string `json:"note"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	entry, err := h.svc.Create(c.Context(), userID, journal.CreateRequest{
		Mood: body.Mood,
		Note: body.Note,
	})
	if err != nil {
		if errors.Is(err, journal.ErrInvalidMood) {
			return badRequest(c, err.Error())
		}
		return internalError(c)
	}
	return created(c, entry)
}

// GET /journal
func (h *JournalHandler) List(c fiber.Ctx) error {
	userID, valid := middleware.UserIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Days int `query:"days"`
	}
	_ = c.Bind().Query(&q)

	entries, err := h.svc.List(c.Context(), userID, q.Days)
	if err != nil {
		return internalError(c)
	}
	return ok(c, entries)
}

// GET /journal/summary
func (h *JournalHandler) Summary(c fiber.Ctx) error {
	userID, valid := middleware.UserIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Days int `query:"days"`
	}
	_ = c.Bind().Query(&q)
	if q.Days <= 0 {
		q.Days = 7
	}

	summary, err := h.svc.Summary(c.Context(), userID, q.Days)
	if err != nil {
		return internalError(c)
	}
	return ok(c, summary)
}
