package dto

type CustomizeRequest struct {
	Color      string `json:"color" example:"red"`
	Material   string `json:"material" example:"leather"`
	SeatConfig string `json:"seatConfig" example:"sport"`
}

type OptimizationResponse struct {
	OptimizedColor    string  `json:"optimizedColor"`
	OptimizedMaterial string  `json:"optimizedMaterial"`
	SeatConfiguration string  `json:"seatConfiguration"`
	CostEstimate      float64 `json:"costEstimate"`
}

// Envelope wraps every JSON response: Data on success, Message on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func OK(data any) Envelope {
	return Envelope{Success: true, Data: data}
}

func Fail(message string) Envelope {
	return Envelope{Success: false, Message: message}
}
