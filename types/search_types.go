package types

// LocationSearchRequest carries the directory search filters. Sort accepts
// default (empty), newest, name_asc, name_desc and nearest; nearest requires
// a radius filter.
type LocationSearchRequest struct {
	Keywords string   `form:"keywords"`
	Category string   `form:"category"` // numeric id or (partial) name
	City     string   `form:"city"`
	Amenity  []uint   `form:"amenity"`
	Sort     string   `form:"sort" binding:"omitempty,oneof=newest name_asc name_desc nearest"`
	Lat      *float64 `form:"lat"`
	Lng      *float64 `form:"lng"`
	Radius   *float64 `form:"radius"`
	Source   string   `form:"source"` // "google" delegates to the external places API
	Page     int      `form:"page,default=1" binding:"min=1"`
	PageSize int      `form:"pageSize,default=20" binding:"min=1,max=100"`
}
