package system

import (
	"testing"

	"dungeon-crawler/internal/component"
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/gamemap"
)

func TestPlayerInputNoKey(t *testing.T) {
	ctx := newTestContext(openMap(10, 10))
	addPlayer(ctx, pt(3, 3), 5)
	run(ctx, PlayerInput)
	if ctx.State != AwaitingInput {
		t.Errorf("state = %v, want awaiting-input", ctx.State)
	}
	if intentCount(ctx) != 0 {
		t.Error("no key should emit nothing")
	}
}

func TestPlayerInput(t *testing.T) {
	cases := []struct {
		name       string
		key        Key
		setup      func(ctx *Context)
		wantMove   int
		wantAttack int
		wantItem   int
		wantHP     int
	}{
		{"step onto floor", KeyRight, nil, 1, 0, 0, 5},
		{"bump enemy", KeyLeft, func(ctx *Context) {
			addMonster(ctx, pt(2, 3), 2, component.TagChasesPlayer{})
		}, 0, 1, 0, 5},
		{"step onto item", KeyDown, func(ctx *Context) {
			ctx.World.Spawn(component.Position(pt(3, 4)), component.TagItem{})
		}, 0, 0, 1, 5},
		{"blocked by wall rests", KeyUp, func(ctx *Context) {
			ctx.Map.Set(pt(3, 2), gamemap.Wall)
		}, 0, 0, 0, 6},
		{"wait rests", KeyWait, nil, 0, 0, 0, 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx := newTestContext(openMap(10, 10))
			player := addPlayer(ctx, pt(3, 3), 5)
			if tc.setup != nil {
				tc.setup(ctx)
			}
			ctx.Key = tc.key

			run(ctx, PlayerInput)

			if ctx.State != PlayerTurn {
				t.Errorf("state = %v, want player-turn", ctx.State)
			}
			if n := len(ctx.World.Query(component.CWantsToMove)); n != tc.wantMove {
				t.Errorf("moves = %d, want %d", n, tc.wantMove)
			}
			if n := len(ctx.World.Query(component.CWantsToAttack)); n != tc.wantAttack {
				t.Errorf("attacks = %d, want %d", n, tc.wantAttack)
			}
			if n := len(ctx.World.Query(component.CWantsToReceiveItem)); n != tc.wantItem {
				t.Errorf("pickups = %d, want %d", n, tc.wantItem)
			}
			if got := hpOf(ctx, player); got != tc.wantHP {
				t.Errorf("hp = %d, want %d", got, tc.wantHP)
			}
		})
	}
}

func TestPlayerInputMoveTarget(t *testing.T) {
	ctx := newTestContext(openMap(10, 10))
	player := addPlayer(ctx, pt(3, 3), 5)
	ctx.Key = KeyUp
	run(ctx, PlayerInput)

	msgs := ctx.World.Query(component.CWantsToMove)
	if len(msgs) != 1 {
		t.Fatalf("got %d moves", len(msgs))
	}
	m, _ := ecs.Get[component.WantsToMove](ctx.World, msgs[0])
	if m.Mover != player || m.Destination != pt(3, 2) {
		t.Errorf("move = %+v", m)
	}
}

func TestRestCapsAtMax(t *testing.T) {
	ctx := newTestContext(openMap(10, 10))
	player := addPlayer(ctx, pt(3, 3), 10)
	ctx.Key = KeyWait
	run(ctx, PlayerInput)
	if got := hpOf(ctx, player); got != 10 {
		t.Errorf("hp = %d, want capped at 10", got)
	}
}

func TestPlayerInputWithoutPlayerPanics(t *testing.T) {
	ctx := newTestContext(openMap(10, 10))
	ctx.Key = KeyUp
	defer func() {
		if recover() == nil {
			t.Error("missing player should panic")
		}
	}()
	run(ctx, PlayerInput)
}
