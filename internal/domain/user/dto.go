package user

type RegisterDTO struct {
	Username string  `json:"username" form:"username" binding:"required"`
	Password string  `json:"password" form:"password" binding:"required,min=6"`
	Email    *string `json:"email" form:"email"`
	FullName *string `json:"full_name" form:"full_name"`
}

type UpdateProfileDTO struct {
	Email    *string `json:"email" form:"email" binding:"omitempty,email"`
	FullName *string `json:"full_name" form:"full_name"`
	Password *string `json:"password" form:"password" binding:"omitempty,min=6"`
}

type LoginDTO struct {
	Username string `json:"username" form:"username" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}
