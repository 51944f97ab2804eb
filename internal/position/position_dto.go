package position

type PositionResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
