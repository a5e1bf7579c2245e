/*
 * trajplot.go, part of Angstrom.
 *
 * Copyright 2026 The Angstrom developers
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package trajplot plots per-frame trajectory analyses, such as
//mean-squared-displacement series and the drift of the geometric center,
//as PNG files.
package trajplot

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r3"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func basicTrajPlot(title, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = "Frame"
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

func frameSeries(values []float64) plotter.XYs {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(i)
		pts[i].Y = v
	}
	return pts
}

// MSDPlot plots a per-frame mean-squared-displacement series against the
// frame number and saves it to plotname.png.
func MSDPlot(msd []float64, title, plotname string) error {
	if msd == nil {
		panic("trajplot.MSDPlot: given nil data")
	}
	p := basicTrajPlot(title, "MSD (A^2)")
	line, err := plotter.NewLine(frameSeries(msd))
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}

// DriftPlot plots, for each frame, the distance of that frame's center from
// the center of the first frame, and saves it to plotname.png. The centers
// come from Trajectory.Centers.
func DriftPlot(centers []r3.Vec, title, plotname string) error {
	if centers == nil {
		panic("trajplot.DriftPlot: given nil data")
	}
	drift := make([]float64, len(centers))
	for i, c := range centers {
		drift[i] = r3.Norm(r3.Sub(c, centers[0]))
	}
	p := basicTrajPlot(title, "Center drift (A)")
	line, err := plotter.NewLine(frameSeries(drift))
	if err != nil {
		return err
	}
	p.Add(line)
	return p.Save(5*vg.Inch, 5*vg.Inch, fmt.Sprintf("%s.png", plotname))
}
