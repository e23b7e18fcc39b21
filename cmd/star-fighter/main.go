package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/star-fighter/audio"
	"github.com/lixenwraith/star-fighter/component"
	"github.com/lixenwraith/star-fighter/config"
	"github.com/lixenwraith/star-fighter/core"
	"github.com/lixenwraith/star-fighter/engine"
	"github.com/lixenwraith/star-fighter/parameter"
	"github.com/lixenwraith/star-fighter/system"
	"github.com/lixenwraith/star-fighter/vmath"
)

var (
	styleDefault = tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset)
	styleMissile = [int(component.MissileKindCount)]tcell.Style{
		styleDefault.Foreground(tcell.ColorAqua),
		styleDefault.Foreground(tcell.ColorYellow),
		styleDefault.Foreground(tcell.ColorFuchsia),
	}
	styleEnemy  = styleDefault.Foreground(tcell.ColorRed)
	styleFlash  = styleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleBullet = styleDefault.Foreground(tcell.ColorOrange)
	styleBoss   = styleDefault.Foreground(tcell.ColorPurple).Bold(true)
	styleEffect = styleDefault.Foreground(tcell.ColorGray)
	styleHUD    = styleDefault.Foreground(tcell.ColorGreen)
	styleAlert  = styleDefault.Foreground(tcell.ColorRed).Bold(true)
)

var enemyGlyph = [int(component.EnemyArchetypeCount)]rune{'v', 'W', 'o', 'M'}

// view implements engine.Renderer and engine.StateSink. All callbacks
// arrive on the loop goroutine, so no locking is needed.
type view struct {
	poses map[core.Entity]engine.EntityPose

	health   float64
	money    int
	ammo     [int(component.MissileKindCount)]int
	progress [int(component.MissileKindCount)]float64
	timeLeft [int(component.MissileKindCount)]int
	boss     *engine.BossStatus
	message  string
}

func newView() *view {
	return &view{poses: make(map[core.Entity]engine.EntityPose, 256)}
}

func (v *view) EntityCreated(pose engine.EntityPose) { v.poses[pose.Entity] = pose }
func (v *view) EntityUpdated(pose engine.EntityPose) { v.poses[pose.Entity] = pose }
func (v *view) EntityDestroyed(id core.Entity)       { delete(v.poses, id) }

func (v *view) StateChanged(delta engine.StateDelta) {
	if delta.Health != nil {
		v.health = *delta.Health
	}
	if delta.Money != nil {
		v.money = *delta.Money
	}
	for kind, count := range delta.Ammo {
		v.ammo[kind] = count
	}
	if delta.Boss != nil {
		v.boss = delta.Boss
	}
	if delta.BossCleared {
		v.boss = nil
	}
	for kind, p := range delta.ReloadProgress {
		v.progress[kind] = p
	}
	for kind, t := range delta.ReloadTimeLeft {
		v.timeLeft[kind] = t
	}
}

func main() {
	stagesPath := flag.String("stages", "", "YAML campaign file (default: built-in)")
	loadoutPath := flag.String("loadout", "", "YAML loadout file (default: fresh vanguard)")
	mute := flag.Bool("mute", false, "disable audio")
	flag.Parse()

	stages := config.DefaultCampaign()
	if *stagesPath != "" {
		var err error
		stages, err = config.LoadStageTable(*stagesPath)
		if err != nil {
			log.Fatalf("stages: %v", err)
		}
	}
	loadout := config.DefaultLoadout()
	if *loadoutPath != "" {
		var err error
		loadout, err = config.LoadLoadout(*loadoutPath)
		if err != nil {
			log.Fatalf("loadout: %v", err)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.SetStyle(styleDefault)

	sound := audio.NewEngine()
	sound.SetMuted(*mute)

	game := engine.NewGame(engine.NewMonotonicTimeProvider())
	game.SetSoundPlayer(sound)
	director := system.NewDirector(game, stages, loadout)

	v := newView()
	game.SetRenderer(v)
	game.SetStateSink(v)

	stageCount := len(stages.Stages)
	level := 0
	var pendingSignal *core.Signal
	game.SetSignalHandler(func(sig core.Signal) {
		s := sig
		pendingSignal = &s
	})

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(parameter.TickInterval)
	defer ticker.Stop()

	v.message = "s: story  c: casual  1/2/3: fire  p: pause  r: reset  q: quit"

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventMouse:
				x, y := ev.Position()
				director.SetAimPoint(screenToWorld(screen, x, y))
				if ev.Buttons()&tcell.Button1 != 0 {
					fire(director, v, component.MissileNormal)
				}
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Rune() == 'q':
					return
				case ev.Rune() == 's':
					level = 0
					if err := director.StartStory(level, false); err != nil {
						v.message = err.Error()
					} else {
						v.message = fmt.Sprintf("stage %d", level+1)
					}
				case ev.Rune() == 'c':
					director.StartCasual()
					v.message = "casual"
				case ev.Rune() == 'p':
					director.SetPaused(!game.IsPaused())
				case ev.Rune() == 'r':
					director.Reset()
					v.message = "s: story  c: casual"
				case ev.Rune() == '1':
					fire(director, v, component.MissileNormal)
				case ev.Rune() == '2':
					fire(director, v, component.MissileBig)
				case ev.Rune() == '3':
					fire(director, v, component.MissileNuke)
				}
			}

		case <-ticker.C:
			director.Step()

			if pendingSignal != nil {
				sig := *pendingSignal
				pendingSignal = nil
				switch sig {
				case core.SignalWaveComplete:
					level++
					if level >= stageCount {
						director.Reset()
						v.message = "campaign complete"
					} else if err := director.StartStory(level, false); err != nil {
						v.message = err.Error()
					} else {
						v.message = fmt.Sprintf("stage %d", level+1)
					}
				case core.SignalGameOver:
					v.message = "game over  r: reset"
				}
			}

			draw(screen, v, game.IsPaused())
		}
	}
}

func fire(director *system.Director, v *view, kind component.MissileKind) {
	switch director.FireMissile(kind) {
	case system.SpawnLimit:
		v.message = fmt.Sprintf("%s: limit", kind)
	case system.SpawnRejected:
		v.message = fmt.Sprintf("%s: unavailable", kind)
	}
}

// screenToWorld maps a cell to the play plane. Terminal cells are about
// twice as tall as wide, so X gets half the Y scale.
func screenToWorld(screen tcell.Screen, x, y int) vmath.Vec3 {
	w, h := screen.Size()
	scaleY := float64(h) / (2 * parameter.EnemySpawnY)
	scaleX := scaleY * 2
	return vmath.Vec3{
		X: (float64(x) - float64(w)/2) / scaleX,
		Y: (float64(h)/2 - float64(y)) / scaleY,
	}
}

func worldToScreen(screen tcell.Screen, pos vmath.Vec3) (int, int) {
	w, h := screen.Size()
	scaleY := float64(h) / (2 * parameter.EnemySpawnY)
	scaleX := scaleY * 2
	return int(math.Round(float64(w)/2 + pos.X*scaleX)),
		int(math.Round(float64(h)/2 - pos.Y*scaleY))
}

func draw(screen tcell.Screen, v *view, paused bool) {
	screen.Clear()
	w, h := screen.Size()

	for _, pose := range v.poses {
		x, y := worldToScreen(screen, pose.Pos)
		if x < 0 || x >= w || y < 1 || y >= h-3 {
			continue
		}

		switch pose.Class {
		case engine.PoseMissile:
			screen.SetContent(x, y, '^', nil, styleMissile[pose.Kind])
		case engine.PoseEnemy:
			style := styleEnemy
			if pose.Flash {
				style = styleFlash
			}
			screen.SetContent(x, y, enemyGlyph[pose.Kind], nil, style)
		case engine.PoseBullet:
			screen.SetContent(x, y, '*', nil, styleBullet)
		case engine.PoseBoss:
			for dx := -3; dx <= 3; dx++ {
				if x+dx >= 0 && x+dx < w {
					screen.SetContent(x+dx, y, '#', nil, styleBoss)
				}
			}
		case engine.PoseEffect:
			if pose.Opacity > 0.1 {
				screen.SetContent(x, y, '○', nil, styleEffect)
			}
		}
	}

	// HUD
	hud := fmt.Sprintf(" hp %3.0f  $%d", v.health, v.money)
	if v.boss != nil {
		hud += fmt.Sprintf("  %s %.0f/%.0f", v.boss.Name, v.boss.HP, v.boss.MaxHP)
	}
	if paused {
		hud += "  [paused]"
	}
	drawText(screen, 0, 0, hud, styleHUD)

	ammoLine := ""
	for kind := component.MissileKind(0); kind < component.MissileKindCount; kind++ {
		ammoLine += fmt.Sprintf(" %s:%d %s", kind, v.ammo[kind], bar(v.progress[kind]))
	}
	drawText(screen, 0, h-2, ammoLine, styleHUD)
	drawText(screen, 0, h-1, " "+v.message, styleAlert)

	screen.Show()
}

func bar(progress float64) string {
	const width = 6
	filled := int(progress * width)
	out := make([]rune, width)
	for i := range out {
		if i < filled {
			out[i] = '='
		} else {
			out[i] = '-'
		}
	}
	return "[" + string(out) + "]"
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
