package game

// Move is the closed set of plays a bot can commit on its turn. The rules
// engine only ever produces the three kinds below as legal moves; the
// unexported marker keeps the union closed so every evaluator can type
// switch exhaustively.
type Move interface {
	isMove()
}

// RegularPlay plays a single card into the current trick.
type RegularPlay struct {
	Card Card
}

// Marriage declares a same-suit King and Queen pair.
type Marriage struct {
	Suit  Suit
	Queen Card
	King  Card
}

// TrumpExchange swaps the trump Jack for the face-up trump card.
type TrumpExchange struct {
	Jack Card
}

func (RegularPlay) isMove()   {}
func (Marriage) isMove()      {}
func (TrumpExchange) isMove() {}

// MarriageFor builds the declared pair for a suit.
func MarriageFor(suit Suit) Marriage {
	return Marriage{
		Suit:  suit,
		Queen: Card{Rank: Queen, Suit: suit},
		King:  Card{Rank: King, Suit: suit},
	}
}
