package system

import (
	"dungeon-crawler/internal/ecs"
	"dungeon-crawler/internal/logger"

	"github.com/sirupsen/logrus"
)

// System reads the world through ctx and records its changes in cmds.
type System func(ctx *Context, cmds *ecs.CommandBuffer)

// Stage is a group of systems that share one snapshot of the world. The
// command buffer is applied after every stage.
type Stage struct {
	Name    string
	Systems []System
}

// Schedule is an ordered pipeline of stages.
type Schedule []Stage

// Run executes every stage in order, applying cmds after each one, so no
// command outlives the call.
func (s Schedule) Run(ctx *Context, cmds *ecs.CommandBuffer) {
	for _, stage := range s {
		for _, sys := range stage.Systems {
			sys(ctx, cmds)
		}
		n := cmds.Len()
		cmds.Apply(ctx.World)
		logger.Log.WithFields(logrus.Fields{
			"stage":    stage.Name,
			"commands": n,
			"state":    ctx.State,
		}).Trace("stage applied")
	}
}

// Scheduler picks the pipeline for the current turn state.
type Scheduler struct {
	cmds      *ecs.CommandBuffer
	pipelines map[TurnState]Schedule
}

// NewScheduler returns a Scheduler with the input, player and monster
// pipelines.
func NewScheduler() *Scheduler {
	fov := Stage{Name: "fov", Systems: []System{FieldOfView}}
	return &Scheduler{
		cmds: &ecs.CommandBuffer{},
		pipelines: map[TurnState]Schedule{
			AwaitingInput: {
				{Name: "input", Systems: []System{PlayerInput}},
				fov,
			},
			PlayerTurn: {
				{Name: "combat", Systems: []System{Combat}},
				{Name: "movement", Systems: []System{Movement}},
				{Name: "item", Systems: []System{ReceiveItem}},
				{Name: "end-turn", Systems: []System{EndTurn}},
				fov,
			},
			MonsterTurn: {
				{Name: "ai", Systems: []System{RandomMove, Chasing}},
				{Name: "combat", Systems: []System{Combat}},
				{Name: "movement", Systems: []System{Movement}},
				{Name: "item", Systems: []System{ReceiveItem}},
				{Name: "end-turn", Systems: []System{EndTurn}},
				fov,
			},
		},
	}
}

// Tick runs the pipeline of ctx.State. Terminal states run nothing.
func (s *Scheduler) Tick(ctx *Context) {
	p, ok := s.pipelines[ctx.State]
	if !ok {
		return
	}
	p.Run(ctx, s.cmds)
}

// RefreshFOV recomputes every dirty field of view outside a turn, e.g.
// right after a level is populated.
func (s *Scheduler) RefreshFOV(ctx *Context) {
	Schedule{{Name: "fov", Systems: []System{FieldOfView}}}.Run(ctx, s.cmds)
}
