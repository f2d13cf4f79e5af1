package orient

import "fmt"

// Pos is an integer grid coordinate. X grows rightward, Y grows downward.
// The zero value is the origin.
type Pos struct {
	X, Y int
}

// Up returns the position one cell above p.
func (p Pos) Up() Pos { return Pos{p.X, p.Y - 1} }

// Down returns the position one cell below p.
func (p Pos) Down() Pos { return Pos{p.X, p.Y + 1} }

// Left returns the position one cell left of p.
func (p Pos) Left() Pos { return Pos{p.X - 1, p.Y} }

// Right returns the position one cell right of p.
func (p Pos) Right() Pos { return Pos{p.X + 1, p.Y} }

// Neighbors returns the four orthogonal neighbors of p in the fixed order
// up, down, left, right. A concrete array keeps iteration allocation-free.
func (p Pos) Neighbors() [4]Pos {
	return [4]Pos{p.Up(), p.Down(), p.Left(), p.Right()}
}

// Add returns the component-wise sum p+q.
func (p Pos) Add(q Pos) Pos { return Pos{p.X + q.X, p.Y + q.Y} }

// String formats p as "(x,y)".
func (p Pos) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }
