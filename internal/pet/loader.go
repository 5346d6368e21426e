package pet

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/Zhaohan-Wang/Star-Office-UI/internal/assets"
	"github.com/Zhaohan-Wang/Star-Office-UI/internal/metrics"
)

const sceneConfigName = "layers.json"

// Loader reads pet data from a project root. The paths are shared between
// handlers and can be re-pointed (tests, future project switching), so they
// sit behind a lock.
type Loader struct {
	mu        sync.RWMutex
	statePath string
	layersDir string
}

func NewLoader(statePath, layersDir string) *Loader {
	return &Loader{statePath: statePath, layersDir: layersDir}
}

// SetRoot re-points the loader at a new state file and layers directory.
func (l *Loader) SetRoot(statePath, layersDir string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.statePath = statePath
	l.layersDir = layersDir
}

func (l *Loader) paths() (statePath, layersDir string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.statePath, l.layersDir
}

// ReadState reads and decodes state.json.
func (l *Loader) ReadState(ctx context.Context) (*State, error) {
	statePath, _ := l.paths()

	raw, err := os.ReadFile(statePath)
	if err != nil {
		metrics.StateReadsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%s: %w", statePath, err)
	}

	var state State
	if err := sonic.Unmarshal(raw, &state); err != nil {
		metrics.StateReadsTotal.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("parse: %w", err)
	}

	metrics.StateReadsTotal.WithLabelValues("ok").Inc()
	return &state, nil
}

// LoadScene reads layers.json, applies defaults, and embeds every referenced
// image as a data URL. A missing layers.json yields a fully defaulted scene;
// a missing image skips that entry; an unreadable image fails the whole load.
func (l *Loader) LoadScene(ctx context.Context) (*Scene, error) {
	start := time.Now()
	scene, err := l.loadScene(ctx)
	metrics.SceneLoadDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SceneLoadsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.SceneLoadsTotal.WithLabelValues("ok").Inc()
	return scene, nil
}

func (l *Loader) loadScene(ctx context.Context) (*Scene, error) {
	_, layersDir := l.paths()

	cfg, err := readSceneConfig(filepath.Join(layersDir, sceneConfigName))
	if err != nil {
		return nil, err
	}

	if err := fillDefaults(cfg, sceneConfig{Width: ptr(defaultWidth), Height: ptr(defaultHeight)}); err != nil {
		return nil, fmt.Errorf("%s: %w", sceneConfigName, err)
	}
	width, height := *cfg.Width, *cfg.Height

	character, err := resolveCharacter(cfg.Character, width, height)
	if err != nil {
		return nil, err
	}

	layers, err := resolveLayers(ctx, cfg.Layers, layersDir, width, height)
	if err != nil {
		return nil, err
	}

	sprites, err := resolveSprites(ctx, cfg.Sprites, layersDir)
	if err != nil {
		return nil, err
	}

	return &Scene{
		Width:     width,
		Height:    height,
		Character: character,
		Layers:    layers,
		Sprites:   sprites,
	}, nil
}

func readSceneConfig(path string) (*sceneConfig, error) {
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &sceneConfig{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sceneConfigName, err)
	}

	var cfg sceneConfig
	if err := sonic.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", sceneConfigName, err)
	}
	return &cfg, nil
}

func resolveCharacter(cc *characterConfig, width, height int) (Character, error) {
	if cc == nil {
		cc = &characterConfig{}
	}
	if err := fillDefaults(cc, characterDefaults(width, height)); err != nil {
		return Character{}, fmt.Errorf("character defaults: %w", err)
	}
	return Character{
		X:      *cc.X,
		Y:      *cc.Y,
		Scale:  *cc.Scale,
		Depth:  *cc.Depth,
		Wander: *cc.Wander,
	}, nil
}

func resolveLayers(ctx context.Context, cfgs []layerConfig, layersDir string, width, height int) ([]Layer, error) {
	layers := make([]Layer, 0, len(cfgs))

	for _, lc := range cfgs {
		imgPath := filepath.Join(layersDir, lc.Image)
		if _, err := os.Stat(imgPath); err != nil {
			slog.WarnContext(ctx, "Layer image not found, skipping", "path", imgPath)
			metrics.AssetsSkippedTotal.WithLabelValues("layer").Inc()
			continue
		}

		if err := fillDefaults(&lc, layerDefaults(width, height)); err != nil {
			return nil, fmt.Errorf("layer defaults: %w", err)
		}

		dataURL, err := assets.DataURL(imgPath)
		if err != nil {
			return nil, err
		}

		layers = append(layers, Layer{
			DataURL: dataURL,
			X:       *lc.X,
			Y:       *lc.Y,
			Depth:   *lc.Depth,
			Scale:   *lc.Scale,
			Alpha:   *lc.Alpha,
		})
	}

	return layers, nil
}

func resolveSprites(ctx context.Context, sc *spritesConfig, layersDir string) (*Sprites, error) {
	if sc == nil {
		return nil, nil
	}

	if err := fillDefaults(sc, spritesConfig{
		FrameWidth:  ptr(defaultFrameSize),
		FrameHeight: ptr(defaultFrameSize),
	}); err != nil {
		return nil, fmt.Errorf("sprite defaults: %w", err)
	}
	frameWidth, frameHeight := *sc.FrameWidth, *sc.FrameHeight

	// Map order is random; sort so the frontend sees a stable anim list.
	keys := make([]string, 0, len(sc.Anims))
	for key := range sc.Anims {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	anims := make([]Anim, 0, len(keys))
	for _, key := range keys {
		ac := sc.Anims[key]

		imgPath := filepath.Join(layersDir, ac.File)
		if _, err := os.Stat(imgPath); err != nil {
			slog.WarnContext(ctx, "Sprite sheet not found, skipping", "key", key, "path", imgPath)
			metrics.AssetsSkippedTotal.WithLabelValues("sprite").Inc()
			continue
		}

		if err := fillDefaults(&ac, animConfig{
			Rate:   ptr(defaultAnimRate),
			Repeat: ptr(defaultAnimRepeat),
		}); err != nil {
			return nil, fmt.Errorf("anim defaults: %w", err)
		}

		dataURL, err := assets.DataURL(imgPath)
		if err != nil {
			return nil, err
		}

		anims = append(anims, Anim{
			Key:     key,
			DataURL: dataURL,
			Frames:  resolveFrames(ctx, ac, imgPath, frameWidth),
			Rate:    *ac.Rate,
			Repeat:  *ac.Repeat,
		})
	}

	return &Sprites{
		FrameWidth:  frameWidth,
		FrameHeight: frameHeight,
		Anims:       anims,
	}, nil
}

// resolveFrames determines an animation's frame count. An explicit value wins;
// otherwise the count is derived from the sheet's pixel width. Sheets that are
// not readable PNGs fall back to a single frame.
func resolveFrames(ctx context.Context, ac animConfig, imgPath string, frameWidth int) int {
	if ac.Frames != nil {
		return *ac.Frames
	}

	if frameWidth > 0 {
		if sheetWidth, err := assets.PNGWidth(imgPath); err == nil {
			if frames := sheetWidth / frameWidth; frames > 0 {
				return frames
			}
		} else {
			slog.DebugContext(ctx, "Could not derive frame count from sheet", "path", imgPath, "error", err)
		}
	}

	return 1
}
