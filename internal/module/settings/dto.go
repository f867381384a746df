package settings

// ServiceRequest is the payload for creating or updating a workshop service.
type ServiceRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Description string  `json:"description" binding:"omitempty,max=500"`
	Price       float64 `json:"price" binding:"gte=0"`
}

// TaxRequest is the payload for creating or updating a tax rate.
type TaxRequest struct {
	Name       string  `json:"name" binding:"required,max=100"`
	Percentage float64 `json:"percentage" binding:"gte=0,lte=100"`
}

// MeasurementRequest is the payload for creating or updating a measurement
// option.
type MeasurementRequest struct {
	Type  string `json:"type" binding:"required,max=50"`
	Value string `json:"value" binding:"required,max=50"`
}
