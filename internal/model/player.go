package model

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) Valid() bool {
	return c == White || c == Black
}

// ClientPlayer is a seat at the board. An empty ID means the seat is open.
type ClientPlayer struct {
	ID    string `json:"name"`
	Color Color  `json:"color"`
}
