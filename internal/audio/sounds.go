// Package audio plays the game's sound effects through beep.
//
// Every sound has a recorded clip under the asset directory. Clips that fail
// to load are replaced by a synthesized tone described by a ToneSpec.
package audio

import "time"

// Sound names a logical sound effect.
type Sound string

const (
	PaddleHit      Sound = "paddleHit"
	BrickHit       Sound = "brickHit"
	BrickBreak     Sound = "brickBreak"
	WallHit        Sound = "wallHit"
	PowerupCollect Sound = "powerupCollect"
	GameOver       Sound = "gameOver"
	LevelComplete  Sound = "levelComplete"
	Multiball      Sound = "multiball"
)

// Sounds lists every sound in a stable order.
var Sounds = []Sound{
	PaddleHit,
	BrickHit,
	BrickBreak,
	WallHit,
	PowerupCollect,
	GameOver,
	LevelComplete,
	Multiball,
}

// Player is anything that can play a sound effect.
type Player interface {
	Play(s Sound)
}

type soundInfo struct {
	asset string // File name without extension
	tone  ToneSpec
}

var catalog = map[Sound]soundInfo{
	PaddleHit: {
		asset: "paddle_hit",
		tone:  ToneSpec{Wave: Sine, Freq: 300, Duration: 100 * time.Millisecond},
	},
	BrickHit: {
		asset: "brick_hit",
		tone:  ToneSpec{Wave: Square, Freq: 400, Duration: 100 * time.Millisecond},
	},
	BrickBreak: {
		asset: "brick_break",
		tone:  ToneSpec{Wave: Sawtooth, Freq: 500, Duration: 200 * time.Millisecond},
	},
	WallHit: {
		asset: "wall_hit",
		tone:  ToneSpec{Wave: Sine, Freq: 200, Duration: 100 * time.Millisecond},
	},
	PowerupCollect: {
		asset: "powerup_collect",
		tone: ToneSpec{
			Wave:     Sine,
			Freq:     600,
			Ramps:    []Ramp{{At: 200 * time.Millisecond, Freq: 900}},
			Duration: 300 * time.Millisecond,
		},
	},
	GameOver: {
		asset: "game_over",
		tone: ToneSpec{
			Wave:     Sawtooth,
			Freq:     300,
			Ramps:    []Ramp{{At: 500 * time.Millisecond, Freq: 100}},
			Duration: 600 * time.Millisecond,
		},
	},
	LevelComplete: {
		asset: "level_complete",
		tone: ToneSpec{
			Wave:     Sine,
			Freq:     400,
			Ramps:    []Ramp{{At: 300 * time.Millisecond, Freq: 800}},
			Duration: 400 * time.Millisecond,
		},
	},
	Multiball: {
		asset: "multiball",
		tone: ToneSpec{
			Wave: Square,
			Freq: 350,
			Ramps: []Ramp{
				{At: 100 * time.Millisecond, Freq: 700},
				{At: 200 * time.Millisecond, Freq: 350},
				{At: 300 * time.Millisecond, Freq: 700},
			},
			Duration: 400 * time.Millisecond,
		},
	},
}

// AssetName returns the clip file name without extension, e.g. "paddle_hit".
// Unknown sounds return an empty string.
func (s Sound) AssetName() string {
	return catalog[s].asset
}

// Tone returns the synthesized fallback for the sound.
func (s Sound) Tone() (ToneSpec, bool) {
	info, ok := catalog[s]
	return info.tone, ok
}
