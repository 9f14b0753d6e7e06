package dto

// CreateDepartmentRequest represents department creation data.
type CreateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Code        string  `json:"code" binding:"required,max=10"`
	Description *string `json:"description"`
	HodID       *int64  `json:"hodId" binding:"omitempty,gt=0"`
}

// UpdateDepartmentRequest represents department update data.
type UpdateDepartmentRequest struct {
	Name        string  `json:"name" binding:"required,max=100"`
	Code        string  `json:"code" binding:"required,max=10"`
	Description *string `json:"description"`
	HodID       *int64  `json:"hodId" binding:"omitempty,gt=0"`
}

// CreateDesignationRequest represents designation creation data.
type CreateDesignationRequest struct {
	Title string `json:"title" binding:"required,max=100"`
}

// UpdateDesignationRequest represents designation update data.
type UpdateDesignationRequest struct {
	Title string `json:"title" binding:"required,max=100"`
}
