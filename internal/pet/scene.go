package pet

import "dario.cat/mergo"

// Canvas and placement defaults, matching what the overlay frontend assumes
// when layers.json says nothing.
const (
	defaultWidth  = 200
	defaultHeight = 250

	defaultCharScale  = 2.5
	defaultCharDepth  = 0
	defaultCharWander = 18.0

	defaultLayerDepth = -1
	defaultLayerScale = 1.0
	defaultLayerAlpha = 1.0

	defaultFrameSize  = 32
	defaultAnimRate   = 4
	defaultAnimRepeat = -1
)

// sceneConfig is the raw shape of layers.json. Every field is optional;
// pointers distinguish "absent" from an explicit zero.
type sceneConfig struct {
	Width     *int             `json:"width"`
	Height    *int             `json:"height"`
	Character *characterConfig `json:"character"`
	Layers    []layerConfig    `json:"layers"`
	Sprites   *spritesConfig   `json:"sprites"`
}

type characterConfig struct {
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Scale  *float64 `json:"scale"`
	Depth  *int     `json:"depth"`
	Wander *float64 `json:"wander"`
}

type layerConfig struct {
	Image string   `json:"image"`
	X     *float64 `json:"x"`
	Y     *float64 `json:"y"`
	Depth *int     `json:"depth"`
	Scale *float64 `json:"scale"`
	Alpha *float64 `json:"alpha"`
}

type spritesConfig struct {
	FrameWidth  *int                  `json:"frame_width"`
	FrameHeight *int                  `json:"frame_height"`
	Anims       map[string]animConfig `json:"anims"`
}

type animConfig struct {
	File   string `json:"file"`
	Frames *int   `json:"frames"`
	Rate   *int   `json:"rate"`
	Repeat *int   `json:"repeat"`
}

// Scene is the fully resolved payload served to the frontend: defaults
// applied, every image embedded as a data URL.
type Scene struct {
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Character Character `json:"character"`
	Layers    []Layer   `json:"layers"`
	Sprites   *Sprites  `json:"sprites"`
}

type Character struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Scale  float64 `json:"scale"`
	Depth  int     `json:"depth"`
	Wander float64 `json:"wander"`
}

type Layer struct {
	DataURL string  `json:"data_url"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Depth   int     `json:"depth"`
	Scale   float64 `json:"scale"`
	Alpha   float64 `json:"alpha"`
}

type Sprites struct {
	FrameWidth  int    `json:"frame_width"`
	FrameHeight int    `json:"frame_height"`
	Anims       []Anim `json:"anims"`
}

type Anim struct {
	Key     string `json:"key"`
	DataURL string `json:"data_url"`
	Frames  int    `json:"frames"`
	Rate    int    `json:"rate"`
	Repeat  int    `json:"repeat"`
}

func ptr[T any](v T) *T { return &v }

// fillDefaults merges defaults into cfg wherever a field is nil.
// WithoutDereference leaves non-nil destination pointers alone instead of
// recursing into the pointee, so explicit values in layers.json always win,
// including explicit zeros; only nil fields receive the default.
func fillDefaults[T any](cfg *T, defaults T) error {
	return mergo.Merge(cfg, defaults, mergo.WithoutDereference)
}

func characterDefaults(width, height int) characterConfig {
	return characterConfig{
		X:      ptr(float64(width) / 2),
		Y:      ptr(float64(height) * 0.66),
		Scale:  ptr(defaultCharScale),
		Depth:  ptr(defaultCharDepth),
		Wander: ptr(defaultCharWander),
	}
}

func layerDefaults(width, height int) layerConfig {
	return layerConfig{
		X:     ptr(float64(width) / 2),
		Y:     ptr(float64(height) / 2),
		Depth: ptr(defaultLayerDepth),
		Scale: ptr(defaultLayerScale),
		Alpha: ptr(defaultLayerAlpha),
	}
}
