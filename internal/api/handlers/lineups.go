package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/dk-lineup/internal/cache"
	"github.com/stitts-dev/dk-lineup/internal/generator"
	"github.com/stitts-dev/dk-lineup/internal/types"
)

// LineupHandler serves lineup generation over HTTP. The pool is loaded once at
// startup and never mutated, so concurrent generation requests need no locking.
type LineupHandler struct {
	pool   types.PlayerPool
	gen    *generator.Generator
	cache  *cache.LineupCache
	logger *logrus.Logger
}

// NewLineupHandler creates a new lineup handler
func NewLineupHandler(pool types.PlayerPool, gen *generator.Generator, lineupCache *cache.LineupCache, logger *logrus.Logger) *LineupHandler {
	return &LineupHandler{
		pool:   pool,
		gen:    gen,
		cache:  lineupCache,
		logger: logger,
	}
}

// GenerateLineup produces one randomized lineup from the loaded pool
func (h *LineupHandler) GenerateLineup(c *gin.Context) {
	lineup, err := h.gen.Generate(h.pool)
	if err != nil {
		status, payload := classifyGenerationError(err)
		c.JSON(status, payload)
		return
	}

	if h.cache != nil {
		if err := h.cache.Store(c.Request.Context(), lineup); err != nil {
			// Cache failures must not cost the caller their lineup
			h.logger.WithError(err).Warn("Failed to cache generated lineup")
		}
	}

	c.JSON(http.StatusOK, lineup)
}

// GetRecentLineups replays recently generated lineups from the cache
func (h *LineupHandler) GetRecentLineups(c *gin.Context) {
	if h.cache == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "lineup cache not configured"})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit parameter"})
		return
	}

	lineups, err := h.cache.Recent(c.Request.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to read recent lineups")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read recent lineups"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"lineups": lineups, "count": len(lineups)})
}

// GetPoolSummary reports pool sizes, qualification thresholds and column stats
func (h *LineupHandler) GetPoolSummary(c *gin.Context) {
	pools, err := h.gen.Qualify(h.pool, nil)
	if err != nil {
		status, payload := classifyGenerationError(err)
		c.JSON(status, payload)
		return
	}

	summary := gin.H{
		"players":  len(h.pool.Players),
		"defenses": len(h.pool.Defenses),
		"qualified": gin.H{
			"QB":   poolSummary(pools.QB),
			"RB":   poolSummary(pools.RB),
			"WR":   poolSummary(pools.WR),
			"TE":   poolSummary(pools.TE),
			"FLEX": poolSummary(pools.Flex),
			"DST":  poolSummary(pools.DST),
		},
		"columns": gin.H{
			"rb_attempts": generator.SummarizeColumn(h.pool.ByPosition(types.PositionRB), types.StatRushAtt),
			"wr_targets":  generator.SummarizeColumn(h.pool.ByPosition(types.PositionWR), types.StatTargets),
			"te_targets":  generator.SummarizeColumn(h.pool.ByPosition(types.PositionTE), types.StatTargets),
		},
	}
	c.JSON(http.StatusOK, summary)
}

func poolSummary(qp generator.QualifiedPool) gin.H {
	names := make([]string, 0, len(qp.Players))
	for _, p := range qp.Players {
		names = append(names, p.Name)
	}
	return gin.H{
		"count":      len(names),
		"players":    names,
		"thresholds": qp.Thresholds,
	}
}

// classifyGenerationError maps the generation error taxonomy onto HTTP codes.
// Pool problems are the client's data, not a server fault.
func classifyGenerationError(err error) (int, gin.H) {
	var emptyErr *generator.EmptyPoolError
	if errors.As(err, &emptyErr) {
		return http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "pool": emptyErr.Pool}
	}
	var insufficientErr *generator.InsufficientPlayersError
	if errors.As(err, &insufficientErr) {
		return http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "slot": insufficientErr.Slot}
	}
	var compErr *generator.CompositionError
	if errors.As(err, &compErr) {
		return http.StatusInternalServerError, gin.H{"error": err.Error()}
	}
	return http.StatusInternalServerError, gin.H{"error": err.Error()}
}
