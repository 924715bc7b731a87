package request

type PlaceOrderRequest struct {
	ServiceID string `json:"service_id" binding:"required,notblank"`
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdateNameRequest struct {
	Name string `json:"name" binding:"max=100"`
}
