// Package session sequences the four SART blocks of one experimental
// session according to a counterbalancing order.
package session

import (
	"fmt"
	"math/rand"

	"github.com/mwlab/sart/internal/sart"
)

// BlocksPerSession is fixed by the protocol: four mood-induction +
// SART phases per participant.
const BlocksPerSession = 4

// Order is one of the four counterbalancing orders. The order fixes
// each block's condition and whether the session ends on a negative
// induction and therefore needs a mood-repair phase.
type Order int

// ParseOrder validates an order number from user input.
func ParseOrder(n int) (Order, error) {
	if n < 1 || n > 4 {
		return 0, fmt.Errorf("counterbalancing order must be 1-4, got %d", n)
	}
	return Order(n), nil
}

func (o Order) String() string {
	return fmt.Sprintf("order %d", int(o))
}

// Conditions returns the SART condition of each block under this
// order. Orders 1 and 2 open with response inhibition and alternate;
// orders 3 and 4 open with non-inhibition.
func (o Order) Conditions() [BlocksPerSession]sart.Condition {
	switch o {
	case 1, 2:
		return [BlocksPerSession]sart.Condition{
			sart.ResponseInhibition, sart.NonInhibition,
			sart.ResponseInhibition, sart.NonInhibition,
		}
	default:
		return [BlocksPerSession]sart.Condition{
			sart.NonInhibition, sart.ResponseInhibition,
			sart.NonInhibition, sart.ResponseInhibition,
		}
	}
}

// MoodRepair reports whether the session ends with a negative
// induction (orders 1 and 4) and so closes with a mood-repair phase.
func (o Order) MoodRepair() bool {
	return o == 1 || o == 4
}

// Block is one planned SART block within a session.
type Block struct {
	Number    int // 1-based
	Condition sart.Condition
	Plan      *sart.BlockPlan
}

// Session holds the full plan for one participant: four blocks
// generated up front so a generation failure surfaces before the
// first stimulus.
type Session struct {
	Order  Order
	Blocks [BlocksPerSession]Block
}

// Plan generates every block of a session. The base params carry
// everything but the condition, which each block takes from the
// order.
func Plan(order Order, base sart.Params, rng *rand.Rand) (*Session, error) {
	if _, err := ParseOrder(int(order)); err != nil {
		return nil, err
	}

	s := &Session{Order: order}
	conditions := order.Conditions()
	for i, cond := range conditions {
		p := base
		p.Condition = cond
		plan, err := sart.GenerateBlock(p, rng)
		if err != nil {
			return nil, fmt.Errorf("block %d (%s): %w", i+1, cond, err)
		}
		s.Blocks[i] = Block{Number: i + 1, Condition: cond, Plan: plan}
	}
	return s, nil
}
