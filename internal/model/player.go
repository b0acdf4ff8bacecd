package model

type Player struct {
	ID    string
	Name  string
	Color Color
}

type ClientPlayer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color Color  `json:"color"`
}

func (p *Player) client() *ClientPlayer {
	if p == nil {
		return nil
	}
	return &ClientPlayer{ID: p.ID, Name: p.Name, Color: p.Color}
}
