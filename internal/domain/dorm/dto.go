package dorm

type DormCreateDTO struct {
	DormCode string `json:"dorm_code" form:"dorm_code" binding:"required"`
	DormName string `json:"dorm_name" form:"dorm_name" binding:"required"`
	Address  string `json:"address" form:"address"`
	Capacity int    `json:"capacity" form:"capacity" binding:"required,gt=0"`
}

type DormUpdateDTO struct {
	DormCode *string `json:"dorm_code" form:"dorm_code"`
	DormName *string `json:"dorm_name" form:"dorm_name"`
	Address  *string `json:"address" form:"address"`
	Capacity *int    `json:"capacity" form:"capacity"`
	Status   *string `json:"status" form:"status" binding:"omitempty,oneof=active maintenance"`
}
