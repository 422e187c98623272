package blaster

import (
	"github.com/vovakirdan/neon-arcade/internal/config"
	"github.com/vovakirdan/neon-arcade/internal/core"
	"github.com/vovakirdan/neon-arcade/internal/sim"
)

// Colors
const (
	colorPlayer   = core.ColorBrightCyan
	colorPlatform = core.ColorBlue
	colorEnemy    = core.ColorBrightRed
	colorBullet   = core.ColorBrightYellow
	colorGun      = core.ColorBrightWhite
)

const (
	gunLength       = 25
	enemySpawnInset = 100 // enemies never spawn in the bottom strip
	minSpawnEvery   = 10
	crosshairGlyph  = "+"
)

type rules struct {
	cfg      config.BlasterConfig
	dm       *config.DifficultyManager
	tickRate int
	hits     *sim.Resolver

	player     sim.Ref
	cooldown   sim.Cooldown
	facingLeft bool
}

func newRules(cfg config.BlasterConfig, tickRate int) *rules {
	if tickRate <= 0 {
		tickRate = 60
	}
	r := &rules{cfg: cfg, dm: config.NewDifficultyManager(cfg.Difficulty), tickRate: tickRate}
	e := cfg.Enemies
	r.hits = sim.NewResolver(
		sim.Rule{A: sim.KindProjectile, B: sim.KindPlatform, Test: sim.PointInside, On: sim.KillA},
		sim.Rule{A: sim.KindHostile, B: sim.KindPlayer, On: r.hitPlayer},
		sim.Rule{A: sim.KindProjectile, B: sim.KindHostile, Test: sim.PointInside, On: sim.DestroyBoth(e.Points, e.KillParticles, colorBullet)},
	)
	return r
}

func (r *rules) Setup(w *sim.World) {
	c := r.cfg
	w.MaxHealth, w.Health = c.Session.MaxHealth, c.Session.MaxHealth
	w.Clock = sim.NewFrameClock(c.Session.Seconds, 1/float64(r.tickRate))
	r.cooldown = sim.Cooldown{Period: c.Weapon.Cooldown}
	r.facingLeft = false

	for _, p := range c.Platforms {
		w.Store.Spawn(sim.Entity{
			Kind:  sim.KindPlatform,
			Pos:   core.Vec{X: p.X, Y: p.Y},
			W:     p.W,
			H:     p.H,
			Color: colorPlatform,
		})
	}
	r.player, _ = w.Store.Spawn(sim.Entity{
		Kind:  sim.KindPlayer,
		Pos:   core.Vec{X: c.Player.X, Y: c.Player.Y},
		Acc:   core.Vec{Y: c.Physics.Gravity},
		W:     c.Player.W,
		H:     c.Player.H,
		Color: colorPlayer,
	})
}

func (r *rules) Phases() []sim.Phase {
	return []sim.Phase{
		{Name: "weapon", Run: r.shoot},
		{Name: "spawn", Run: r.spawnEnemies},
		{Name: "player", Run: r.movePlayer},
		{Name: "bullets", Run: func(w *sim.World) { sim.Integrate(w, sim.KindProjectile) }},
		{Name: "enemies", Run: r.moveEnemies},
		{Name: "collide", Run: func(w *sim.World) { r.hits.Resolve(w) }},
		{Name: "particles", Run: func(w *sim.World) { sim.Integrate(w, sim.KindParticle) }},
	}
}

// aimPoint is the pointer position, or a point straight ahead when the
// pointer was never reported.
func (r *rules) aimPoint(w *sim.World, from core.Vec) core.Vec {
	if p, ok := w.Input.PointerPosition(); ok {
		return p
	}
	dx := 100.0
	if r.facingLeft {
		dx = -dx
	}
	return from.Add(core.Vec{X: dx})
}

func (r *rules) shoot(w *sim.World) {
	r.cooldown.Tick()
	if !w.Input.IsPointerDown() && !w.Input.IsHeld(core.ActionFire) {
		return
	}
	player, ok := w.Store.Get(r.player)
	if !ok || !r.cooldown.Fire() {
		return
	}

	wp := r.cfg.Weapon
	from := player.Center()
	w.Store.Spawn(sim.Entity{
		Kind:     sim.KindProjectile,
		Pos:      from,
		Vel:      sim.Aim(from, r.aimPoint(w, from), wp.BulletSpeed),
		Radius:   wp.BulletRadius,
		Life:     wp.BulletLife,
		Boundary: sim.BoundDespawn,
		Color:    colorBullet,
	})
}

func (r *rules) spawnEnemies(w *sim.World) {
	e := r.cfg.Enemies
	if !sim.Every(w.Tick, r.dm.Interval(e.SpawnEvery, minSpawnEvery, w.Score, w.Tick)) {
		return
	}

	x, dir := 0.0, 1.0
	if w.Rand.Float64() > 0.5 {
		x, dir = w.Bounds.W-e.Size, -1
	}
	w.Store.Spawn(sim.Entity{
		Kind:  sim.KindHostile,
		Pos:   core.Vec{X: x, Y: w.RandRange(0, w.Bounds.H-enemySpawnInset)},
		Vel:   core.Vec{X: w.RandRange(1, 3) * dir},
		W:     e.Size,
		H:     e.Size,
		Color: colorEnemy,
	})
}

func (r *rules) movePlayer(w *sim.World) {
	p, ok := w.Store.Get(r.player)
	if !ok {
		return
	}
	ph := r.cfg.Physics
	in := &w.Input

	switch {
	case in.IsHeld(core.ActionLeft):
		p.Vel.X = -ph.MoveSpeed
		r.facingLeft = true
	case in.IsHeld(core.ActionRight):
		p.Vel.X = ph.MoveSpeed
		r.facingLeft = false
	default:
		sim.ApplyFriction(p, ph.Friction)
	}

	if p.Grounded && (in.IsHeld(core.ActionUp) || in.IsHeld(core.ActionJump)) {
		p.Vel.Y = ph.JumpForce
	}

	sim.Integrate(w, sim.KindPlayer)
	p.Pos.X = core.ClampF(p.Pos.X, w.Bounds.X, w.Bounds.Right()-p.W)

	if p.Pos.Y > w.Bounds.Bottom() {
		w.Health = 0
		w.End("FELL INTO THE VOID")
		return
	}
	sim.Land(w, p, sim.KindPlatform)
}

func (r *rules) moveEnemies(w *sim.World) {
	sim.Integrate(w, sim.KindHostile)

	player, ok := w.Store.Get(r.player)
	if !ok {
		return
	}
	target := player.Center()
	speed := r.dm.Speed(r.cfg.Enemies.HomingSpeed, w.Score, w.Tick)
	w.Store.ForEach(sim.KindHostile, func(e *sim.Entity) {
		sim.Home(e, target, speed)
	})
}

func (r *rules) hitPlayer(w *sim.World, enemy, player *sim.Entity) {
	e := r.cfg.Enemies
	sim.DamageOnContact(e.Damage, e.ContactParticles, colorEnemy)(w, enemy, player)
	if w.MaxHealth > 0 && w.Health == 0 {
		w.End("SYSTEM FAILURE")
	}
}

func (r *rules) Draw(w *sim.World, _ core.RunState, out []core.DrawCommand) []core.DrawCommand {
	w.Store.ForEach(sim.KindPlatform, func(e *sim.Entity) {
		cmd := core.RectCmd(e.Pos.X, e.Pos.Y, e.W, e.H, e.Color)
		cmd.Glyph = '▓'
		out = append(out, cmd)
	})

	if p, ok := w.Store.Get(r.player); ok {
		out = append(out, core.RectCmd(p.Pos.X, p.Pos.Y, p.W, p.H, p.Color))
		c := p.Center()
		aim := r.aimPoint(w, c).Sub(c)
		if l := aim.Len(); l > 0 {
			tip := c.Add(aim.Scale(gunLength / l))
			out = append(out, core.LineCmd(c.X, c.Y, tip.X, tip.Y, colorGun))
		}
	}

	w.Store.ForEach(sim.KindHostile, func(e *sim.Entity) {
		cmd := core.RectCmd(e.Pos.X, e.Pos.Y, e.W, e.H, e.Color)
		cmd.Glyph = '◆'
		out = append(out, cmd)
	})
	w.Store.ForEach(sim.KindProjectile, func(e *sim.Entity) {
		out = append(out, core.CircleCmd(e.Pos.X, e.Pos.Y, e.Radius, e.Color))
	})
	w.Store.ForEach(sim.KindParticle, func(e *sim.Entity) {
		cmd := core.CircleCmd(e.Pos.X, e.Pos.Y, e.Radius, e.Color)
		cmd.Alpha = e.Fade()
		out = append(out, cmd)
	})

	if p, ok := w.Input.PointerPosition(); ok {
		out = append(out, core.TextCmd(p.X, p.Y, crosshairGlyph, core.ColorWhite))
	}
	return out
}
