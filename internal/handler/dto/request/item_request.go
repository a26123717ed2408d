package request

type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required,notblank,max=2000"`
}
