package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kitforge/kitforge-service/internal/service"
)

// EstimateRoutes handles estimation and kit card route registration.
type EstimateRoutes struct {
	handler      *Handler
	cardsHandler *KitCardsHandler
}

// NewEstimateRoutes creates a new EstimateRoutes instance.
func NewEstimateRoutes(estimator service.Estimator, cardService service.KitCardService) *EstimateRoutes {
	handler := NewHandler(estimator)

	var cardsHandler *KitCardsHandler
	if cardService != nil {
		cardsHandler = NewKitCardsHandler(cardService)
	}

	return &EstimateRoutes{
		handler:      handler,
		cardsHandler: cardsHandler,
	}
}

// RegisterPublicRoutes registers public estimation routes (when auth is disabled).
// Kit card routes are not registered without authentication because cards
// belong to a user.
func (r *EstimateRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/estimate", r.handler.Estimate)
	rg.GET("/materials", r.handler.Materials)
}

// RegisterProtectedRoutes registers estimation and kit card routes on an
// authenticated group.
func (r *EstimateRoutes) RegisterProtectedRoutes(protected *gin.RouterGroup, cfg *RouterConfig) {
	protected.POST("/estimate", r.handler.Estimate)
	protected.GET("/materials", r.handler.Materials)

	if r.cardsHandler != nil {
		protected.POST("/cards", r.cardsHandler.CreateCard)
		protected.GET("/cards", r.cardsHandler.ListCards)
		protected.GET("/cards/:id", r.cardsHandler.GetCard)
		protected.DELETE("/cards/:id", r.cardsHandler.DeleteCard)
		protected.GET("/cards/:id/export", r.cardsHandler.ExportCard)
	}
}

// GetHandler returns the underlying estimate handler.
func (r *EstimateRoutes) GetHandler() *Handler {
	return r.handler
}
