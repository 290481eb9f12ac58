package handlers

import (
	"net/http"
	response "preditor_imoveis/internal/adapter/http/dto/response"
	"preditor_imoveis/internal/usecase"

	"github.com/gin-gonic/gin"
)

const (
	ServiceName    = "House Price Prediction API"
	ServiceVersion = "1.0.0"
)

// ServiceHandler answers the informational endpoints.
type ServiceHandler struct {
	usecase usecase.IPredictionUseCase
}

func NewServiceHandler(uc usecase.IPredictionUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// Root godoc
// @Summary  Service information
// @Tags     service
// @Produce  json
// @Success  200  {object}  response.RootResponse
// @Router   / [get]
func (h *ServiceHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, response.RootResponse{
		Service:     ServiceName,
		Version:     ServiceVersion,
		Status:      response.StatusOnline,
		ModelLoaded: h.usecase.ModelLoaded(),
		Endpoints: map[string]string{
			"predict":             "/v1/predict",
			"predict_unversioned": "/predict",
			"health":              "/health",
			"model":               "/v1/model",
			"predictions":         "/v1/predictions/{id}",
			"docs":                "/swagger/index.html",
		},
	})
}

// Health godoc
// @Summary  Model readiness
// @Tags     service
// @Produce  json
// @Success  200  {object}  response.HealthResponse
// @Failure  503  {object}  response.HealthResponse
// @Router   /health [get]
func (h *ServiceHandler) Health(c *gin.Context) {
	info, err := h.usecase.ModelInfo()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, response.NewHealthResponse(false, ""))
		return
	}
	c.JSON(http.StatusOK, response.NewHealthResponse(true, info.Version))
}
