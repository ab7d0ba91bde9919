package scenes

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/vectorgameexperts/velloplay/components"
	cfg "github.com/vectorgameexperts/velloplay/config"
	"github.com/vectorgameexperts/velloplay/systems"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AnimationScene is the demo: one interactive card driven by an
// idle/hover/spin state machine, plus an uncontrolled card that just plays.
type AnimationScene struct {
	ecs   *ecs.ECS
	once  sync.Once
	float *gween.Sequence
	card  *donburi.Entry
}

func NewAnimationScene() *AnimationScene {
	return &AnimationScene{}
}

func (s *AnimationScene) Update() {
	s.once.Do(s.configure)
	s.handleShortcuts()
	s.Tick(1.0 / float64(ebiten.TPS()))
}

// Tick runs one step of the animation pipeline. Exposed separately from
// Update so a host can drive the scene with its own clock.
func (s *AnimationScene) Tick(dt float64) {
	systems.AdvanceTime(s.ecs, dt)
	s.updateFloat(dt)
	s.ecs.Update()
}

func (s *AnimationScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *AnimationScene) configure() {
	store := assets.NewStore()

	spinner := store.Add(demoAsset(200, 200, assets.Composition{FrameEnd: 120, FrameRate: 60}))
	badge := store.Add(demoAsset(120, 120, assets.Composition{FrameEnd: 80, FrameRate: 30}))

	player := components.NewPlayer("idle").
		WithState(components.NewState("idle").
			WithAsset(spinner).
			WithTransition(components.OnMouseEnter("hover"))).
		WithState(components.NewState("hover").
			WithTheme(components.NewTheme().Add("background", color.RGBA{R: 60, G: 80, B: 60, A: 255})).
			WithTransition(components.OnMouseClick("spin")).
			WithTransition(components.OnMouseLeave("idle"))).
		WithState(components.NewState("spin").
			WithPlaybackSettings(spinSettings()).
			WithResetPlayheadOnStart(true).
			WithTransition(components.OnComplete("idle")))
	if err := player.Validate(); err != nil {
		panic("invalid demo state machine: " + err.Error())
	}
	if saved, _ := systems.LoadSettings(); saved != nil && saved.Speed != 0 {
		player.SetSpeed(saved.Speed)
	}

	e := ecs.NewECS(donburi.NewWorld())

	storeEntry := e.World.Entry(e.World.Create(components.AssetStore))
	components.AssetStore.SetValue(storeEntry, components.AssetStoreData{Assets: store})

	card := e.World.Entry(e.World.Create(
		components.Player, components.Playback, components.Asset, components.Transform))
	components.Player.Set(card, player)
	defaults := components.DefaultPlaybackSettings()
	components.Playback.Set(card, &defaults)
	components.Asset.SetValue(card, components.AssetData{Handle: spinner})
	components.Transform.SetValue(card, cardTransform(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2))

	// The second card has no player. It advances unconditionally.
	extra := e.World.Entry(e.World.Create(components.Asset, components.Transform))
	components.Asset.SetValue(extra, components.AssetData{Handle: badge})
	components.Transform.SetValue(extra, cardTransform(float64(cfg.C.Width)-100, 100))

	e.AddSystem(systems.UpdateInput)
	systems.Register(e)
	e.AddRenderer(cfg.Default, systems.DrawAnimations)

	// Bob the interactive card up and down.
	s.float = gween.NewSequence(
		gween.New(0, -24, 1.5, ease.InOutQuad),
		gween.New(-24, 0, 1.5, ease.InOutQuad),
	)
	s.card = card
	s.ecs = e
}

func (s *AnimationScene) updateFloat(dt float64) {
	if s.float == nil || s.card == nil {
		return
	}
	offset, _, done := s.float.Update(float32(dt))
	if done {
		s.float.Reset()
	}
	components.Transform.SetValue(s.card,
		cardTransform(float64(cfg.C.Width)/2, float64(cfg.C.Height)/2+float64(offset)))
}

func (s *AnimationScene) handleShortcuts() {
	if s.card == nil {
		return
	}
	player := components.Player.Get(s.card)
	settings := components.Playback.Get(s.card)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		player.TogglePlay()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		player.Stop()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		player.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		player.SetSpeed(settings.Speed + 0.25)
		saveSettings(settings.Speed+0.25, settings.Intermission)
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		player.SetSpeed(settings.Speed - 0.25)
		saveSettings(settings.Speed-0.25, settings.Intermission)
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		player.SetIntermission(settings.Intermission + 30)
		saveSettings(settings.Speed, settings.Intermission+30)
	}
}

func saveSettings(speed, intermission float64) {
	_ = systems.SaveSettings(&systems.SavedSettings{Speed: speed, Intermission: intermission})
}

func spinSettings() components.PlaybackSettings {
	settings := components.DefaultPlaybackSettings()
	settings.Speed = 2
	settings.Looping = components.DoNotLoop()
	return settings
}

func demoAsset(w, h float64, comp assets.Composition) *assets.VelloAsset {
	var local ebiten.GeoM
	// Center the content rect on the entity origin: local x in [-w/2, w/2]
	// maps to content [0, w], local y to [-h, 0].
	local.Translate(w/2, -h/2)
	return &assets.VelloAsset{
		Width:                w,
		Height:               h,
		LocalTransformCenter: local,
		Data:                 &assets.Lottie{Composition: comp},
	}
}

func cardTransform(x, y float64) components.TransformData {
	var m ebiten.GeoM
	m.Translate(x, y)
	return components.TransformData{GeoM: m}
}
