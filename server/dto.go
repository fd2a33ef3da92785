package server

type createGameRequest struct {
	FEN string `json:"fen"`
}

type playMoveRequest struct {
	San string `json:"san"`
}

type searchRequest struct {
	Iterations int `json:"iterations"`
}

type gameStateResponse struct {
	ID      string   `json:"id"`
	FEN     string   `json:"fen"`
	Turn    string   `json:"turn"`
	Result  string   `json:"result"`
	History []string `json:"history"`
}

type searchResponse struct {
	gameStateResponse
	Move   string `json:"move"`
	Source string `json:"source"`
}

type openingLine struct {
	History string `json:"history"`
	Reply   string `json:"reply"`
}

type errorResponse struct {
	Error string `json:"error"`
}
