package system

import (
	"math/rand"
	"testing"

	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/config"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/factory"
	"dungeon-crawler/internal/gamemap"
	"dungeon-crawler/internal/generate"
)

func TestMovementSucceeds(t *testing.T) {
	ctx := newTestContext(openMap(10, 10))
	player := addPlayer(ctx, pt(3, 3), 10)
	run(ctx, FieldOfView)
	ctx.World.Spawn(component.WantsToMove{Mover: player, Destination: pt(4, 3)})

	run(ctx, Movement)

	if got := posOf(ctx, player); got != pt(4, 3) {
		t.Fatalf("position = %v, want (4,3)", got)
	}
	fov, _ := ecs.Get[component.FieldOfView](ctx.World, player)
	if !fov.Dirty {
		t.Error("move should mark the field of view dirty")
	}
	if intentCount(ctx) != 0 {
		t.Error("move intent should be consumed")
	}
}

func TestMovementBlockedByWall(t *testing.T) {
	ctx := newTestContext(openMap(10, 10))
	player := addPlayer(ctx, pt(1, 1), 10)
	run(ctx, FieldOfView)
	ctx.World.Spawn(component.WantsToMove{Mover: player, Destination: pt(1, 0)})

	run(ctx, Movement)

	if got := posOf(ctx, player); got != pt(1, 1) {
		t.Errorf("blocked move changed position to %v", got)
	}
	fov, _ := ecs.Get[component.FieldOfView](ctx.World, player)
	if fov.Dirty {
		t.Error("blocked move must not dirty the field of view")
	}
	if intentCount(ctx) != 0 {
		t.Error("blocked intent should still be consumed")
	}
}

func TestMovementOutOfBounds(t *testing.T) {
	g := gamemap.New(3, 3)
	g.Fill(gamemap.Floor)
	ctx := newTestContext(g)
	player := addPlayer(ctx, pt(0, 0), 10)
	ctx.World.Spawn(component.WantsToMove{Mover: player, Destination: pt(-1, 0)})

	run(ctx, Movement)

	if got := posOf(ctx, player); got != pt(0, 0) {
		t.Errorf("position = %v, want (0,0)", got)
	}
}

func TestMovementPlayerMovesCamera(t *testing.T) {
	ctx := newTestContext(openMap(40, 40))
	player := addPlayer(ctx, pt(20, 20), 10)
	ctx.Camera = gamemap.NewCamera(10, 10, 40, 40, pt(20, 20))
	run(ctx, FieldOfView)
	ctx.World.Spawn(component.WantsToMove{Mover: player, Destination: pt(21, 20)})

	run(ctx, Movement)

	if ctx.Camera.LeftX != 16 {
		t.Errorf("camera left = %d, want 16", ctx.Camera.LeftX)
	}
	if !ctx.Map.IsRevealed(pt(21, 20)) {
		t.Error("destination should be revealed")
	}
}

func TestMovementMonsterKeepsCamera(t *testing.T) {
	ctx := newTestContext(openMap(40, 40))
	addPlayer(ctx, pt(20, 20), 10)
	ctx.Camera = gamemap.NewCamera(10, 10, 40, 40, pt(20, 20))
	orc := addMonster(ctx, pt(30, 30), 2, component.TagChasesPlayer{})
	ctx.World.Spawn(component.WantsToMove{Mover: orc, Destination: pt(30, 31)})

	run(ctx, Movement)

	if posOf(ctx, orc) != pt(30, 31) {
		t.Error("monster should move")
	}
	if ctx.Camera.LeftX != 15 {
		t.Errorf("monster move shifted the camera to %d", ctx.Camera.LeftX)
	}
}

func TestMovementInFourRoomLevel(t *testing.T) {
	opts := config.Default()
	opts.Architect = config.ArchitectRooms
	opts.MaxRooms = 4
	rng := rand.New(rand.NewSource(4))
	res, err := generate.Build(rng, opts)
	if err != nil {
		t.Fatal(err)
	}
	ctx := newTestContext(res.Grid)
	start := res.Rooms[0].Center()
	player := factory.NewPlayer(ctx.World, start, opts.PlayerHP, opts.PlayerFOV)

	exits := res.Grid.Exits(start)
	if len(exits) == 0 {
		t.Fatal("room center has no enterable neighbor")
	}
	dest := exits[0].P
	ctx.World.Spawn(component.WantsToMove{Mover: player, Destination: dest})

	run(ctx, Movement)

	if got := posOf(ctx, player); got != dest {
		t.Errorf("player at %v, want %v", got, dest)
	}
	fov, _ := ecs.Get[component.FieldOfView](ctx.World, player)
	if !fov.Dirty {
		t.Error("field of view should be dirty after the move")
	}
}
