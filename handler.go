package main

import (
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gofiber/fiber/v2"
)

const statusMessage = "API Mock funcionando"

// Handlers adapts HTTP requests to store operations.
type Handlers struct {
	store  RankingStore
	doc    *openapi3.T
	schema *openapi3.Schema
}

// NewHandlers binds the handlers to store. The POST body schema is taken
// from doc.
func NewHandlers(store RankingStore, doc *openapi3.T) *Handlers {
	return &Handlers{
		store:  store,
		doc:    doc,
		schema: requestSchema(doc, "/api/doce", fiber.MethodPost),
	}
}

// Operations maps each operationId of the API document to its handler.
func (h *Handlers) Operations() map[string]fiber.Handler {
	return map[string]fiber.Handler{
		"getRankings": h.GetRankings,
		"saveRanking": h.SaveRanking,
		"resetGroup":  h.ResetGroup,
		"getStatus":   h.Status,
		"getOpenAPI":  h.OpenAPI,
	}
}

// failure logs err and sends it back as a 400.
func failure(c *fiber.Ctx, err error) error {
	logger := requestLogger(c)
	logger.Error(ComponentHTTPServer, err.Error())
	logger.RespondWith(fiber.StatusBadRequest)
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

// validationError logs every violation on its own line, then responds.
func validationError(c *fiber.Ctx, err APIError, violations []string) error {
	logger := requestLogger(c)
	logger.Warning(ComponentValidator, "Request did not pass the validation rules")
	for _, v := range violations {
		logger.Violation(v)
	}
	return failure(c, err)
}

// GetRankings serves GET /api/doce/:codigo_grupo with the group's players,
// most wins first. Unknown groups yield an empty list.
func (h *Handlers) GetRankings(c *fiber.Ctx) error {
	code := c.Params("codigo_grupo")
	rankings := sortedRankings(h.store.Group(code))

	logger := requestLogger(c)
	logger.Success(ComponentNegotiator, fmt.Sprintf("Found %d players in group %s", len(rankings), code))
	if err := c.JSON(rankings); err != nil {
		return failure(c, err)
	}
	logger.RespondWith(fiber.StatusOK)
	return nil
}

// SaveRanking serves POST /api/doce. It records one player's result and
// answers 204 with no body.
func (h *Handlers) SaveRanking(c *fiber.Ctx) error {
	req, violations, err := h.parseResult(c.Body())
	if apiErr, ok := err.(APIError); ok {
		return validationError(c, apiErr, violations)
	}
	if err != nil {
		return failure(c, err)
	}

	logger := requestLogger(c)
	logger.Success(ComponentValidator, "Request passed all validation rules")

	if err := h.store.RecordResult(req.group, req.player, req.won); err != nil {
		logger.Error(ComponentStore, "Failed to persist rankings")
		return failure(c, err)
	}
	logger.Success(ComponentStore, fmt.Sprintf("Recorded %s in group %s (won=%t)", req.player, req.group, req.won))

	logger.RespondWith(fiber.StatusNoContent)
	c.Status(fiber.StatusNoContent)
	return nil
}

// ResetGroup serves DELETE /api/doce/:codigo_grupo. Unknown groups are not
// an error.
func (h *Handlers) ResetGroup(c *fiber.Ctx) error {
	code := c.Params("codigo_grupo")
	logger := requestLogger(c)

	removed, err := h.store.DeleteGroup(code)
	if err != nil {
		logger.Error(ComponentStore, "Failed to persist rankings")
		return failure(c, err)
	}
	if removed {
		logger.Success(ComponentStore, fmt.Sprintf("Removed group %s", code))
	} else {
		logger.Info(ComponentStore, fmt.Sprintf("Group %s not found, nothing to remove", code))
	}

	logger.RespondWith(fiber.StatusOK)
	return c.JSON(fiber.Map{"message": fmt.Sprintf("Grupo %s reseteado correctamente", code)})
}

// Status serves GET /status.
func (h *Handlers) Status(c *fiber.Ctx) error {
	st := h.store.Stats()
	requestLogger(c).RespondWith(fiber.StatusOK)
	return c.JSON(fiber.Map{
		"status":          statusMessage,
		"grupos_activos":  st.Groups,
		"total_jugadores": st.Players,
	})
}

// OpenAPI serves GET /openapi.json with the loaded API document.
func (h *Handlers) OpenAPI(c *fiber.Ctx) error {
	requestLogger(c).RespondWith(fiber.StatusOK)
	return c.JSON(h.doc)
}

type resultRequest struct {
	group  string
	player string
	won    bool
}

// parseResult validates a POST body. Validation failures come back as an
// APIError together with the violations that caused them.
func (h *Handlers) parseResult(raw []byte) (resultRequest, []string, error) {
	var req resultRequest

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return req, nil, fmt.Errorf("invalid JSON body: %w", err)
	}

	body, ok := decoded.(map[string]any)
	if !ok || len(body) == 0 {
		return req, []string{"body must be a non-empty JSON object"}, ErrInvalidFormat
	}
	if missing := missingRequired(body, h.schema); len(missing) > 0 {
		return req, requiredViolations("body", missing), ErrInvalidFormat
	}
	group, ok := body["CodigoGrupo"].(string)
	if !ok {
		return req, []string{"body property 'CodigoGrupo' must be a string"}, ErrInvalidFormat
	}

	player, ok := body["jugador"].(map[string]any)
	if !ok {
		return req, []string{"body property 'jugador' must be an object"}, ErrIncompletePlayer
	}
	if missing := missingRequired(player, propertySchema(h.schema, "jugador")); len(missing) > 0 {
		return req, requiredViolations("body.jugador", missing), ErrIncompletePlayer
	}
	name, ok := player["nombre"].(string)
	if !ok {
		return req, []string{"body.jugador property 'nombre' must be a string"}, ErrIncompletePlayer
	}

	req.group = group
	req.player = name
	req.won = isWinner(player["vencedor"])
	return req, nil, nil
}

func requiredViolations(where string, missing []string) []string {
	out := make([]string, 0, len(missing))
	for _, field := range missing {
		out = append(out, fmt.Sprintf("%s must have required property '%s'", where, field))
	}
	return out
}

// isWinner reports whether vencedor equals 1. JSON true counts as 1.
func isWinner(v any) bool {
	switch t := v.(type) {
	case float64:
		return t == 1
	case bool:
		return t
	}
	return false
}

func requestLogger(c *fiber.Ctx) *Logger {
	if l, ok := c.Locals(localsLogger).(*Logger); ok {
		return l
	}
	return NewLogger(nil)
}
