package routes

import (
	"preditor_imoveis/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPredict     = "/predict"
	PathModel       = "/model"
	PathPredictions = "/predictions"
)

func addPredictionRoutes(rg *gin.RouterGroup, predictionHandler *handlers.PredictionHandler) {
	rg.POST(PathPredict, predictionHandler.Predict)
	rg.GET(PathModel, predictionHandler.GetModelInfo)

	predictions := rg.Group(PathPredictions)
	{
		predictions.GET("/:id", predictionHandler.GetPrediction)
	}
}
