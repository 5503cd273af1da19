package physics

import (
	"math"

	"github.com/san-kum/orbitsim/internal/dynamo"
)

// Constants holds the physical constants of the restricted two-body problem.
// M sits fixed at the origin. The orbiting Mass never enters the
// acceleration; it only scales energy and angular momentum.
type Constants struct {
	G    float64
	M    float64
	Mass float64
}

func DefaultConstants() Constants {
	return Constants{G: 1, M: 10, Mass: 1}
}

// Mu is the standard gravitational parameter G·M.
func (c Constants) Mu() float64 { return c.G * c.M }

func Radius(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}

// Accel returns the Newtonian acceleration toward the origin at (x, y).
// At the origin the result is NaN; callers get no guard.
func Accel(c Constants, x, y float64) (ax, ay float64) {
	r := Radius(x, y)
	r3 := r * r * r
	ax = -c.G * c.M * x / r3
	ay = -c.G * c.M * y / r3
	return ax, ay
}

// CentralBody is a test particle orbiting a fixed mass at the origin.
// State: [x, y, vx, vy]
type CentralBody struct {
	c Constants
}

func NewCentralBody(c Constants) *CentralBody {
	return &CentralBody{c: c}
}

func (b *CentralBody) Constants() Constants { return b.c }

func (b *CentralBody) StateDim() int { return 4 }

func (b *CentralBody) Derive(x dynamo.State, _ float64) dynamo.State {
	ax, ay := Accel(b.c, x[0], x[1])
	return dynamo.State{x[2], x[3], ax, ay}
}

// Energy implements dynamo.Hamiltonian.
func (b *CentralBody) Energy(x dynamo.State) float64 {
	v2 := x[2]*x[2] + x[3]*x[3]
	return b.c.Mass * (0.5*v2 - b.c.Mu()/Radius(x[0], x[1]))
}

func (b *CentralBody) AngularMomentum(x dynamo.State) float64 {
	return b.c.Mass * (x[0]*x[3] - x[1]*x[2])
}

// CircularSpeed is the speed of a circular orbit at radius r.
func (b *CentralBody) CircularSpeed(r float64) float64 {
	return math.Sqrt(b.c.Mu() / r)
}

// Period returns the Kepler period of the bound orbit through x, or +Inf when
// the orbit is unbound.
func (b *CentralBody) Period(x dynamo.State) float64 {
	v2 := x[2]*x[2] + x[3]*x[3]
	specific := 0.5*v2 - b.c.Mu()/Radius(x[0], x[1])
	if specific >= 0 {
		return math.Inf(1)
	}
	a := -b.c.Mu() / (2 * specific)
	return 2 * math.Pi * math.Sqrt(a*a*a/b.c.Mu())
}

// GetParams reports the tunable constants.
func (b *CentralBody) GetParams() map[string]float64 {
	return map[string]float64{
		"g": b.c.G,
		"M": b.c.M,
		"m": b.c.Mass,
	}
}
