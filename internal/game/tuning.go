package game

// Params is the tuning of one world. Units are pixels and ticks.
type Params struct {
	ScreenWidth  float64
	ScreenHeight float64

	BirdRadius      float64
	BirdGravity     float64
	BirdJumpImpulse float64
	Player1X        float64
	Player2X        float64

	PipeWidth   float64
	PipeGap     float64
	PipeSpeed   float64
	PipeSpacing float64 // min horizontal distance between spawns
	PipeMargin  float64 // min height of either segment
}

const (
	ScreenWidth     = 1920.0
	ScreenHeight    = 1080.0
	BirdRadius      = 35.0
	BirdGravity     = 1.2
	BirdJumpImpulse = -18.0
	Player1X        = 300.0
	Player2X        = 400.0
	PipeWidth       = 120.0
	PipeGap         = 320.0
	PipeSpeed       = 5.0
	PipeSpacing     = 500.0
	PipeMargin      = 80.0
)

func DefaultParams() Params {
	return Params{
		ScreenWidth:     ScreenWidth,
		ScreenHeight:    ScreenHeight,
		BirdRadius:      BirdRadius,
		BirdGravity:     BirdGravity,
		BirdJumpImpulse: BirdJumpImpulse,
		Player1X:        Player1X,
		Player2X:        Player2X,
		PipeWidth:       PipeWidth,
		PipeGap:         PipeGap,
		PipeSpeed:       PipeSpeed,
		PipeSpacing:     PipeSpacing,
		PipeMargin:      PipeMargin,
	}
}
