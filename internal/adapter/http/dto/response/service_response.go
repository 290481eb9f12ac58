package response

const (
	StatusHealthy     = "healthy"
	StatusUnavailable = "unavailable"
	StatusOnline      = "online"
)

type HealthResponse struct {
	Status  string `json:"status" example:"healthy"`
	Model   string `json:"model" example:"loaded"`
	Version string `json:"version,omitempty" example:"1.0.0"`
}

func NewHealthResponse(loaded bool, version string) HealthResponse {
	if !loaded {
		return HealthResponse{Status: StatusUnavailable, Model: "not loaded"}
	}
	return HealthResponse{Status: StatusHealthy, Model: "loaded", Version: version}
}

type RootResponse struct {
	Service     string            `json:"service"`
	Version     string            `json:"version"`
	Status      string            `json:"status"`
	ModelLoaded bool              `json:"model_loaded"`
	Endpoints   map[string]string `json:"endpoints"`
}
