package types

type PlaceDetailsResponse struct {
	HTMLAttributions []string           `json:"html_attributions"`
	Result           PlaceDetailsResult `json:"result"`
	Status           string             `json:"status"`
}

type PlaceDetailsResult struct {
	BusinessStatus       *string           `json:"business_status,omitempty"`
	EditorialSummary     *EditorialSummary `json:"editorial_summary,omitempty"`
	FormattedAddress     string            `json:"formatted_address"`
	FormattedPhoneNumber string            `json:"formatted_phone_number"`
	Geometry             Geometry          `json:"geometry"`
	Name                 string            `json:"name"`
	OpeningHours         *OpeningHours     `json:"opening_hours,omitempty"`
	Photos               []Photo           `json:"photos,omitempty"`
	PriceLevel           *int              `json:"price_level,omitempty"`
	Rating               *float64          `json:"rating,omitempty"`
	Types                []string          `json:"types"`
	URL                  string            `json:"url"`
	UserRatingsTotal     *int              `json:"user_ratings_total,omitempty"`
	Vicinity             *string           `json:"vicinity,omitempty"`
	Website              string            `json:"website"`
}

type EditorialSummary struct {
	Language string `json:"language"`
	Overview string `json:"overview"`
}

type Geometry struct {
	Location LatLng   `json:"location"`
	Viewport Viewport `json:"viewport"`
}

type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Viewport struct {
	Northeast LatLng `json:"northeast"`
	Southwest LatLng `json:"southwest"`
}

type OpeningHours struct {
	OpenNow     bool     `json:"open_now"`
	WeekdayText []string `json:"weekday_text,omitempty"`
}

type Photo struct {
	Height           int      `json:"height"`
	HTMLAttributions []string `json:"html_attributions"`
	PhotoReference   string   `json:"photo_reference"`
	Width            int      `json:"width"`
}
