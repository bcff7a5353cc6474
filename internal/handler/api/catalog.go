package api

import (
	"net/http"

	"cinema-booking/internal/domain/seat"
	"cinema-booking/internal/domain/show"
	reqdto "cinema-booking/internal/handler/dto/request"
	resdto "cinema-booking/internal/handler/dto/response"
	"cinema-booking/internal/handler/httperr"
	"cinema-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	catalogCommands commands.CatalogCommands
}

func NewCatalogHandler(catalogCommands commands.CatalogCommands) *CatalogHandler {
	return &CatalogHandler{catalogCommands: catalogCommands}
}

// CreateShow provisions a show and its full seat map in one shot. The seat
// map is immutable afterwards.
func (h *CatalogHandler) CreateShow(c *gin.Context) {
	var req reqdto.CreateShowRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", false)
		return
	}

	specs := make([]show.SeatSpec, len(req.Seats))
	for i, s := range req.Seats {
		specs[i] = show.SeatSpec{No: s.No, Type: seat.Type(s.Type)}
	}

	id, err := h.catalogCommands.CreateShow(c.Request.Context(), commands.CreateShowParams{
		MovieTitle: req.MovieTitle,
		HallNo:     req.HallNo,
		StartTime:  req.StartTime,
		PriceCents: req.PriceCents,
		Seats:      specs,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateShowResponse{ID: id})
}
