package dto

type UpdatePlanRequest struct {
	Plan string `json:"plan" binding:"required,oneof=Free Pro Enterprise"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Active Suspended"`
}
