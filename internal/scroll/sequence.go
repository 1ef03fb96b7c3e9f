package scroll

// CardPose is one evaluated card state: viewport-fraction position, opacity
// and scale.
type CardPose struct {
	X, Y    float64
	Opacity float64
	Scale   float64
}

// CardMotion holds the four tracks of one choreographed card.
type CardMotion struct {
	X, Y, Opacity, Scale Track
}

// At evaluates the card at progress p with the standard easing.
func (m CardMotion) At(p float64) CardPose {
	return CardPose{
		X:       m.X.EvalEased(p, EaseInOutCubic),
		Y:       m.Y.EvalEased(p, EaseInOutCubic),
		Opacity: m.Opacity.Eval(p),
		Scale:   m.Scale.EvalEased(p, EaseInOutCubic),
	}
}

// Sequence is the full page choreography.
type Sequence struct {
	Cards []CardMotion
}

// At evaluates every card.
func (s Sequence) At(p float64) []CardPose {
	poses := make([]CardPose, len(s.Cards))
	for i, c := range s.Cards {
		poses[i] = c.At(p)
	}
	return poses
}

// DefaultSequence builds the puzzle-slot choreography for n cards: each
// card starts scattered below the fold, fades in, and slides into its slot
// on an evenly spaced strip. Cards enter staggered, one tenth of the
// timeline apart.
func DefaultSequence(n int) Sequence {
	if n <= 0 {
		return Sequence{}
	}
	seq := Sequence{Cards: make([]CardMotion, n)}
	for i := 0; i < n; i++ {
		slotX := (float64(i) + 0.5) / float64(n)
		start := 0.08 * float64(i%5)
		end := start + 0.5
		if end > 1 {
			end = 1
		}
		fromX := slotX
		if i%2 == 0 {
			fromX -= 0.2
		} else {
			fromX += 0.2
		}
		seq.Cards[i] = CardMotion{
			X:       Track{{At: start, Value: fromX}, {At: end, Value: slotX}},
			Y:       Track{{At: start, Value: 1.2}, {At: end, Value: 0.82}},
			Opacity: Track{{At: start, Value: 0}, {At: start + 0.15, Value: 1}},
			Scale:   Track{{At: start, Value: 0.6}, {At: end, Value: 1.0}},
		}
	}
	return seq
}
