package chooser

import "github.com/tbugraerdogan/schnapsen-bots/game"

// sample draws one complete game state consistent with the view, fixing the
// opponent's committed leading move when following. World completion is the
// rules engine's job; the chooser only supplies its shared random source so
// that seeding it once makes an entire decision reproducible.
func (c *Chooser) sample(view game.View, leader game.Move) game.State {
	return view.CompleteState(leader, c.rng)
}
