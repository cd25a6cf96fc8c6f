package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nidohealth/nido_backend/internal/api/http/middleware"
	"github.com/nidohealth/nido_backend/internal/screening"
	"github.com/nidohealth/nido_backend/internal/service/assessment"
)

type AssessmentHandler struct {
	svc assessment.Service
}

func NewAssessmentHandler(svc assessment.Service) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

func mapAssessmentError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, assessment.ErrSessionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, assessment.ErrResultNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, screening.ErrSessionCompleted):
		return conflict(c, err.Error())
	case errors.Is(err, screening.ErrInvalidAnswer),
		errors.Is(err, screening.ErrIncompleteAssessment),
		errors.Is(err, screening.ErrMissingAnswer),
		errors.Is(err, screening.ErrUnknownInstrument):
		return badRequest(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /instruments
func (h *AssessmentHandler) Instruments(c fiber.Ctx) error {
	return ok(c, h.svc.Instruments())
}

// GET /instruments/:instrument/questions
func (h *AssessmentHandler) Questions(c fiber.Ctx) error {
	instrument, err := screening.ParseInstrument(c.Params("instrument"))
	if err != nil {
		return badRequest(c, err.Error())
	}
	return ok(c, h.svc.Questions(instrument))
}

// POST /assessments
func (h *AssessmentHandler) Start(c fiber.Ctx) error {
	userID, valid := middleware.UserIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Instrument string `json:"instrument"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	instrument, err := screening.ParseInstrument(body.Instrument)
	if err != nil {
		return badRequest(c, err.Error())
	}

	state, err := h.svc.Start(c.Context(), userID, instrument)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return created(c, state)
}

// PUT /assessments/:id/answers
func (h *AssessmentHandler) Answer(c fiber.Ctx) error {
	userID, valid := middleware.UserIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		QuestionID int `json:"question_id"`
		Value      int `json:"value"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	state, err := h.svc.Answer(c.Context(), userID, c.Params("id"), body.QuestionID, body.Value)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, state)
}

// POST /assessments/:id/complete
func (h *AssessmentHandler) Complete(c fiber.Ctx) error {
	userID, valid := middleware.UserIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	result, err := h.svc.Complete(c.Context(), userID, c.Params("id"))
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, result)
}

// GET /assessments/:id/recommendations
func (h *AssessmentHandler) Recommendations(c fiber.Ctx) error {
	userID, valid := middleware.UserIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	recs, err := h.svc.Recommendations(c.Context(), userID, c.Params("id"))
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, fiber.Map{"recommendations": recs})
}

// GET /history
func (h *AssessmentHandler) History(c fiber.Ctx) error {
	userID, valid := middleware.UserIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Instrument string `query:"instrument"`
		Last       int    `query:"last"`
	}
	_ = c.Bind().Query(&q)

	var instrument screening.Instrument
	if q.Instrument != "" {
		var err error
		instrument, err = screening.ParseInstrument(q.Instrument)
		if err != nil {
			return badRequest(c, err.Error())
		}
	}

	results, err := h.svc.History(c.Context(), userID, instrument, q.Last)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, results)
}

// GET /history/latest
func (h *AssessmentHandler) Latest(c fiber.Ctx) error {
	userID, valid := middleware.UserIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	result, err := h.svc.Latest(c.Context(), userID)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, result)
}

// GET /history/trend
func (h *AssessmentHandler) Trend(c fiber.Ctx) error {
	userID, valid := middleware.UserIDFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Instrument string `query:"instrument"`
	}
	_ = c.Bind().Query(&q)

	var instrument screening.Instrument
	if q.Instrument != "" {
		var err error
		instrument, err = screening.ParseInstrument(q.Instrument)
		if err != nil {
			return badRequest(c, err.Error())
		}
	}

	points, err := h.svc.Trend(c.Context(), userID, instrument)
	if err != nil {
		return mapAssessmentError(c, err)
	}
	return ok(c, points)
}
