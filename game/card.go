package game

type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

var suitNames = [...]string{"Hearts", "Diamonds", "Clubs", "Spades"}

func (s Suit) String() string {
	if s < Hearts || s > Spades {
		return "Unknown"
	}
	return suitNames[s]
}

// Suits enumerates every suit in play.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank declaration order follows trick strength: a card beats another card
// of the same suit exactly when its Rank compares greater.
type Rank int

const (
	Jack Rank = iota
	Queen
	King
	Ten
	Ace
)

var rankNames = [...]string{"Jack", "Queen", "King", "Ten", "Ace"}

func (r Rank) String() string {
	if r < Jack || r > Ace {
		return "Unknown"
	}
	return rankNames[r]
}

// Card identifies one card of the deck. Cards are plain values and compare
// with ==.
type Card struct {
	Rank Rank
	Suit Suit
}

func (c Card) String() string {
	return c.Rank.String() + " of " + c.Suit.String()
}
