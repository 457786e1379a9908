// Command secsdemo drives a small simulation loop against an ecs.Registry,
// the generalization of the teacher's examples/rpg and examples/particles
// programs (driven by *ecs.World and a MovementSystem/CombatSystem/
// DebugSystem trio) onto this package's Registry/View/Dispatcher API and a
// cobra CLI instead of a bare func main with a canvas window.
package main

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/lzuwei/secs-go/ecs"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Position is an entity's location in an arbitrary 2D playfield.
type Position struct {
	X, Y float64
}

// Velocity is an entity's per-tick displacement.
type Velocity struct {
	X, Y float64
}

// Health is an entity's remaining hit points, the MovementSystem/
// CombatSystem style attribute pair the teacher's rpg example drives.
type Health struct {
	Current, Max int
}

// Name labels an entity for the debug log, mirroring examples/rpg's
// DebugSystem name tag.
type Name struct {
	Value string
}

// Died is dispatched once an entity's health reaches zero, demonstrating
// the deferred-delivery side of the dispatcher: combat resolution
// enqueues it mid-tick, and it is delivered once all combat for that
// tick has been applied.
type Died struct {
	Entity ecs.EntityID
	Name   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "secsdemo",
		Short: "Run a small simulation loop against the ecs package",
	}
	root.AddCommand(newRunCmd(), newConfigCmd())
	return root
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the default configuration as TOML-shaped text",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ecs.DefaultConfig()
			fmt.Fprintf(cmd.OutOrStdout(), "[sparse]\npage_size = %d\n\n[entity]\nindex_bits = %d\nversion_bits = %d\n\n[registry]\ninitial_pool_capacity = %d\n",
				cfg.Sparse.PageSize, cfg.Entity.IndexBits, cfg.Entity.VersionBits, cfg.Registry.InitialPoolCapacity)
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	var entityCount, ticks int
	var verbose bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Simulate a swarm of entities for a number of ticks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				ecs.SetLogger(l)
				defer l.Sync()
			}
			runSimulation(cmd, entityCount, ticks)
			return nil
		},
	}

	cmd.Flags().IntVar(&entityCount, "entities", 100, "number of entities to spawn")
	cmd.Flags().IntVar(&ticks, "ticks", 50, "number of simulation ticks to run")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "emit debug logs for registry and dispatcher activity")
	return cmd
}

func runSimulation(cmd *cobra.Command, entityCount, ticks int) {
	r := ecs.New()
	d := ecs.NewDispatcher()
	out := cmd.OutOrStdout()

	deaths := 0
	ecs.DispatcherSink[Died](d).Connect(func(ev Died) {
		deaths++
		fmt.Fprintf(out, "tick: %s (entity %v) died\n", ev.Name, ev.Entity)
	})

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < entityCount; i++ {
		e := r.Create()
		ecs.Emplace(r, e, Position{X: rng.Float64() * 100, Y: rng.Float64() * 100})
		ecs.Emplace(r, e, Velocity{X: rng.Float64()*2 - 1, Y: rng.Float64()*2 - 1})
		ecs.Emplace(r, e, Health{Current: 10, Max: 10})
		ecs.Emplace(r, e, Name{Value: fmt.Sprintf("unit-%d", i)})
	}

	for tick := 0; tick < ticks; tick++ {
		movementSystem(r)
		combatSystem(r, d, rng)
		d.UpdateAll()
	}

	fmt.Fprintf(out, "simulation complete: %d entities alive, %d died over %d ticks\n",
		r.Size(), deaths, ticks)
}

// movementSystem advances every entity carrying both Position and
// Velocity, the direct generalization of examples/rpg's MovementSystem
// onto ecs.View2.
func movementSystem(r *ecs.Registry) {
	ecs.NewView2[Position, Velocity](r).Each(func(_ ecs.EntityID, pos *Position, vel *Velocity) {
		pos.X += vel.X
		pos.Y += vel.Y
	})
}

// combatSystem randomly chips away at health and enqueues a Died event
// once an entity reaches zero, the generalization of examples/rpg's
// CombatSystem onto ecs.View2 and the dispatcher's deferred path.
func combatSystem(r *ecs.Registry, d *ecs.Dispatcher, rng *rand.Rand) {
	var dead []ecs.EntityID

	ecs.NewView2[Health, Name](r).Each(func(e ecs.EntityID, hp *Health, name *Name) {
		if rng.Float64() < 0.01 {
			hp.Current--
			if hp.Current <= 0 {
				dead = append(dead, e)
				ecs.Enqueue(d, Died{Entity: e, Name: name.Value})
			}
		}
	})

	for _, e := range dead {
		r.Destroy(e)
	}
}
