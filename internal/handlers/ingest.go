package handlers

import (
	"errors"
	"net/http"

	"songcrate/internal/catalog"
	"songcrate/internal/metadata"

	"github.com/gin-gonic/gin"
)

// IngestHandler handles the ingestion endpoint
type IngestHandler struct {
	ingestor *catalog.Ingestor
}

// NewIngestHandler creates a new ingest handler
func NewIngestHandler(ingestor *catalog.Ingestor) *IngestHandler {
	return &IngestHandler{ingestor: ingestor}
}

// IngestPost accepts one raw post record and runs a full ingestion.
// Failures are atomic: a non-201 response means no rows were committed
// for this call.
func (h *IngestHandler) IngestPost(c *gin.Context) {
	var raw catalog.RawPost
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post record: " + err.Error()})
		return
	}

	result, err := h.ingestor.Ingest(c.Request.Context(), raw)
	if err != nil {
		var resolutionErr *metadata.ResolutionError
		if errors.As(err, &resolutionErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, result)
}
