package handlers

import (
	"errors"
	"log"
	"net/http"
	request "preditor_imoveis/internal/adapter/http/dto/request"
	response "preditor_imoveis/internal/adapter/http/dto/response"
	"preditor_imoveis/internal/domain/entities"
	"preditor_imoveis/internal/usecase"
	"preditor_imoveis/pkg"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPredictionPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request body", http.StatusBadRequest)
	errModelUnavailable         = pkg.NewDomainErrorSimple("MODEL_UNAVAILABLE", "Model not loaded", http.StatusInternalServerError)
)

type PredictionHandler struct {
	usecase usecase.IPredictionUseCase
}

func NewPredictionHandler(uc usecase.IPredictionUseCase) *PredictionHandler {
	return &PredictionHandler{usecase: uc}
}

// Predict godoc
// @Summary      Predict the price of a house
// @Tags         prediction
// @Accept       json
// @Produce      json
// @Param        house  body      request.HouseFeaturesRequest  true  "House description"
// @Success      200    {object}  response.PredictionResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      500    {object}  pkg.HTTPError
// @Router       /v1/predict [post]
func (h *PredictionHandler) Predict(c *gin.Context) {
	if !h.usecase.ModelLoaded() {
		c.JSON(errModelUnavailable.HTTPStatus, errModelUnavailable.ToHTTPError())
		return
	}

	var payload request.HouseFeaturesRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[prediction][handler] invalid payload err=%v", err)
		c.JSON(errInvalidPredictionPayload.HTTPStatus, errInvalidPredictionPayload.ToHTTPError())
		return
	}
	if verr := payload.FieldErrors(); verr != nil {
		log.Printf("[prediction][handler] mistyped fields err=%v", verr)
		appErr := mapPredictionError(verr)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Predict(c.Request.Context(), payload.ToHouseInput())
	if err != nil {
		log.Printf("[prediction][handler] predict failed err=%v", err)
		appErr := mapPredictionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[prediction][handler] predict success price=%.2f confidence=%s id=%s", result.PredictedPrice, result.Confidence, result.ID)
	c.JSON(http.StatusOK, response.FromPredictionResult(result))
}

// GetModelInfo godoc
// @Summary      Describe the loaded model artifact
// @Tags         prediction
// @Produce      json
// @Success      200  {object}  response.ModelInfoResponse
// @Failure      500  {object}  pkg.HTTPError
// @Router       /v1/model [get]
func (h *PredictionHandler) GetModelInfo(c *gin.Context) {
	info, err := h.usecase.ModelInfo()
	if err != nil {
		appErr := mapPredictionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromModelInfo(info))
}

// GetPrediction godoc
// @Summary      Read a stored prediction
// @Tags         prediction
// @Produce      json
// @Param        id   path      string  true  "Prediction id"
// @Success      200  {object}  response.PredictionRecordResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Failure      503  {object}  pkg.HTTPError
// @Router       /v1/predictions/{id} [get]
func (h *PredictionHandler) GetPrediction(c *gin.Context) {
	id := c.Param("id")

	rec, err := h.usecase.GetPrediction(c.Request.Context(), id)
	if err != nil {
		log.Printf("[prediction][handler] get failed id=%s err=%v", id, err)
		appErr := mapPredictionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPredictionRecord(rec))
}

func mapPredictionError(err error) *pkg.AppError {
	var verr *entities.ValidationError
	switch {
	case errors.As(err, &verr):
		return pkg.NewValidationAppError("Invalid house description", toErrorDetails(verr.Violations))
	case errors.Is(err, usecase.ErrModelUnavailable):
		return errModelUnavailable
	case errors.Is(err, usecase.ErrInference):
		cause := strings.TrimPrefix(err.Error(), usecase.ErrInference.Error()+": ")
		return pkg.NewDomainError("INFERENCE_ERROR", "Error making prediction: "+cause, err, http.StatusInternalServerError)
	case errors.Is(err, usecase.ErrInvalidPredictionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid prediction id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPredictionNotFound):
		return pkg.NewDomainErrorSimple("PREDICTION_NOT_FOUND", "Prediction not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHistoryDisabled):
		return pkg.NewDomainErrorSimple("HISTORY_DISABLED", "Prediction history is disabled", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func toErrorDetails(violations []entities.FieldViolation) []pkg.ErrorDetail {
	details := make([]pkg.ErrorDetail, 0, len(violations))
	for _, v := range violations {
		details = append(details, pkg.ErrorDetail{
			Field:   v.Field,
			Rule:    v.Rule,
			Message: v.Message,
			Min:     v.Min,
			Max:     v.Max,
			Allowed: v.Allowed,
		})
	}
	return details
}
