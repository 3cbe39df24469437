package calculator

// CalculationRequest is the JSON body for POST /calculate. Fields are pointers
// so that an absent field can be told apart from a zero value.
type CalculationRequest struct {
	Num1      *float64 `json:"num1" validate:"required"`
	Num2      *float64 `json:"num2" validate:"required"`
	Operation *string  `json:"operation" validate:"required"`
}

// CalculationResult is the JSON response for a successful calculation.
type CalculationResult struct {
	Result    float64 `json:"result"`
	Operation string  `json:"operation"`
	Num1      float64 `json:"num1"`
	Num2      float64 `json:"num2"`
}
