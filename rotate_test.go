package angstrom

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestRotate(Te *testing.T) {
	mol, err := NewMolecule([]string{"C"}, mat.NewDense(1, 3, []float64{1, 0, 0}))
	if err != nil {
		Te.Fatal(err)
	}
	z := r3.Vec{Z: 1}
	rot, err := Rotate(mol, z, 90*Deg2Rad)
	if err != nil {
		Te.Fatal(err)
	}
	got, _ := rot.Coord(0)
	fmt.Println("(1,0,0) rotated 90 degrees about z:", got)
	if !closeTo(got.X, 0, 1e-9) || !closeTo(got.Y, 1, 1e-9) || !closeTo(got.Z, 0, 1e-9) {
		Te.Errorf("rotation wrong: %v", got)
	}
	//the original molecule must be untouched
	orig, _ := mol.Coord(0)
	if orig.X != 1 || orig.Y != 0 {
		Te.Errorf("Rotate modified its input: %v", orig)
	}
	if _, err := Rotate(mol, r3.Vec{}, math.Pi); err == nil {
		Te.Error("expected an error for the zero-vector axis")
	}
}

func TestRotationTrajectoryLinear(Te *testing.T) {
	mol, _ := NewMolecule([]string{"C"}, mat.NewDense(1, 3, []float64{1, 0, 0}))
	traj, err := RotationTrajectory(mol, r3.Vec{Z: 1}, 2*math.Pi, 4, Linear)
	if err != nil {
		Te.Fatal(err)
	}
	if traj.Frames() != 4 {
		Te.Fatalf("expected 4 frames, got %d", traj.Frames())
	}
	//frame 1 is a quarter turn, the last frame completes the circle.
	first, _ := traj.Frame(0)
	v, _ := first.Coord(0)
	if !closeTo(v.X, 0, 1e-9) || !closeTo(v.Y, 1, 1e-9) {
		Te.Errorf("first frame should be a quarter turn: %v", v)
	}
	last, _ := traj.Frame(3)
	v, _ = last.Coord(0)
	fmt.Println("last frame of a full turn:", v)
	if !closeTo(v.X, 1, 1e-9) || !closeTo(v.Y, 0, 1e-9) {
		Te.Errorf("a full turn should come back to the start: %v", v)
	}
}

func TestRotationTrajectorySine(Te *testing.T) {
	mol, _ := NewMolecule([]string{"C"}, mat.NewDense(1, 3, []float64{1, 0, 0}))
	traj, err := RotationTrajectory(mol, r3.Vec{Z: 1}, math.Pi, 8, Sine)
	if err != nil {
		Te.Fatal(err)
	}
	//sine easing starts at the original orientation
	first, _ := traj.Frame(0)
	v, _ := first.Coord(0)
	if !closeTo(v.X, 1, 1e-9) || !closeTo(v.Y, 0, 1e-9) {
		Te.Errorf("sine easing should keep the first frame unrotated: %v", v)
	}
	//and the covered angle never decreases
	prev := -1.0
	for i := 0; i < traj.Frames(); i++ {
		f, _ := traj.Frame(i)
		p, _ := f.Coord(0)
		angle := math.Atan2(p.Y, p.X)
		if angle < prev-1e-9 {
			Te.Errorf("rotation went backwards at frame %d: %f < %f", i, angle, prev)
		}
		prev = angle
	}
}

func TestRotationTrajectoryArguments(Te *testing.T) {
	mol, _ := NewMolecule([]string{"C"}, mat.NewDense(1, 3, []float64{1, 0, 0}))
	if _, err := RotationTrajectory(mol, r3.Vec{Z: 1}, math.Pi, 0, Linear); err == nil {
		Te.Error("expected an error for zero frames")
	}
	if _, err := RotationTrajectory(mol, r3.Vec{Z: 1}, math.Pi, 5, "cubic"); err == nil {
		Te.Error("expected an error for an unknown interpolation")
	}
	if _, err := RotationTrajectory(nil, r3.Vec{Z: 1}, math.Pi, 5, Linear); err == nil {
		Te.Error("expected an error for a nil molecule")
	}
	fmt.Println("rotation trajectory argument checks passed")
}
