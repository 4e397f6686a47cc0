/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package timectl turns UCI "go" time parameters into a per-move
// search budget and a monotonic-clock deadline the search driver
// polls cooperatively: one logical timeline, no timer goroutine racing
// the search.
package timectl

import (
	"math"
	"time"
)

const (
	// Safeguard is reserved off the clock to cover the overhead of
	// returning the move once the budget runs out.
	Safeguard = 100 * time.Millisecond
	// MaxUsage is the fraction of the computed per-move share the
	// engine actually allows itself to spend.
	MaxUsage = 0.8
	// DefaultMovesToGo is used when the GUI does not send movestogo.
	DefaultMovesToGo = 30
)

// Budget computes the per-move search allowance given the remaining
// clock, the per-move increment, and moves left to the next time
// control. movesToGo <= 0 uses DefaultMovesToGo.
func Budget(clock, increment time.Duration, movesToGo int) time.Duration {
	if movesToGo <= 0 {
		movesToGo = DefaultMovesToGo
	}
	base := clock - Safeguard
	if base <= 0 {
		if increment <= 0 {
			return 0
		}
		return round(time.Duration(float64(increment) * MaxUsage))
	}
	share := float64(base)*MaxUsage/float64(movesToGo) + float64(increment)
	return round(time.Duration(share))
}

func round(d time.Duration) time.Duration {
	return time.Duration(math.Round(float64(d)))
}

// Controller tracks a single search's soft deadline against a
// monotonic clock. The zero value has no active deadline.
type Controller struct {
	deadline time.Time
	active   bool
}

// New returns a Controller with no active deadline.
func New() *Controller {
	return &Controller{}
}

// Start arms the controller with a budget measured from now.
func (c *Controller) Start(budget time.Duration) {
	c.deadline = time.Now().Add(budget)
	c.active = true
}

// Stop disarms the controller; Expired always reports false
// afterwards until Start is called again.
func (c *Controller) Stop() {
	c.active = false
}

// Expired reports whether the armed deadline has passed. Always false
// while disarmed (infinite/ponder/depth-only searches never time out).
func (c *Controller) Expired() bool {
	return c.active && time.Now().After(c.deadline)
}

// Remaining returns the time left until the deadline, or zero if
// disarmed or already expired.
func (c *Controller) Remaining() time.Duration {
	if !c.active {
		return 0
	}
	if d := time.Until(c.deadline); d > 0 {
		return d
	}
	return 0
}
