package dto

type CarModelResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice string `json:"basePrice"`
	Currency  string `json:"currency"`
}

type CatalogOptionResponse struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Label string `json:"label"`
	Price string `json:"price"`
}

type CatalogResponse struct {
	Models  []CarModelResponse      `json:"models"`
	Options []CatalogOptionResponse `json:"options"`
}

type QuoteRequest struct {
	ModelID    string `json:"modelId" example:"roadster"`
	Color      string `json:"color" example:"red"`
	Material   string `json:"material" example:"leather"`
	SeatConfig string `json:"seatConfig" example:"sport"`
}

type QuoteItemResponse struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
	Label string `json:"label"`
	Price string `json:"price"`
}

type QuoteResponse struct {
	ModelID  string              `json:"modelId"`
	Currency string              `json:"currency"`
	Items    []QuoteItemResponse `json:"items"`
	Total    string              `json:"total"`
}
