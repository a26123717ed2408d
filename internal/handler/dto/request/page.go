package request

// PageQuery binds from/size; range checks happen in the query layer so every
// listing reports the same error.
type PageQuery struct {
	From int `form:"from,default=0"`
	Size int `form:"size,default=10"`
}
