package model

// MoveRequest is a move as sent by clients, in square labels.
type MoveRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type MoveResult struct {
	OK    bool       `json:"ok"`
	Error string     `json:"error,omitempty"`
	State MatchState `json:"state"`
}

type LegalMoves struct {
	From string   `json:"from"`
	To   []string `json:"to"`
}

type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Color  Color  `json:"color"`
}
