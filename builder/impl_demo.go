// SPDX-License-Identifier: MIT
// Package: navgraph/builder
//
// impl_demo.go - Demo() constructor: a fifteen-location map of Arequipa.
//
// Ids are base+0 … base+14 in table order; every road is two-way, giving
// 26 roads and 52 directed edges. Weights are road lengths in kilometres,
// coordinates are map units and do not share that scale.

package builder

import (
	"github.com/katalvlaran/navgraph/graph"
)

const methodDemo = "Demo"

var demoPlaces = [...]struct {
	name string
	x, y float64
}{
	{"Plaza de Armas", 100, 100},
	{"Universidad Nacional San Agustín", 150, 80},
	{"Mercado San Camilo", 80, 120},
	{"Estadio Melgar", 200, 60},
	{"Terminal Terrestre", 50, 50},
	{"Aeropuerto Alfredo Rodríguez Ballón", 250, 100},
	{"Monasterio de Santa Catalina", 90, 110},
	{"Universidad Católica", 180, 90},
	{"Hospital Nacional", 120, 140},
	{"Cerro Colorado", 70, 180},
	{"Paucarpata", 160, 150},
	{"Cayma", 110, 40},
	{"Yanahuara", 85, 85},
	{"Sachaca", 130, 70},
	{"Miraflores", 140, 130},
}

var demoRoads = [...]struct {
	a, b int
	km   float64
}{
	{0, 1, 2.2}, {0, 2, 1.8}, {0, 6, 1.0}, {0, 12, 1.5},
	{1, 3, 2.5}, {1, 7, 1.8}, {1, 13, 1.2},
	{2, 4, 2.0}, {2, 8, 2.2},
	{3, 5, 2.8}, {3, 7, 1.5},
	{4, 9, 3.5}, {4, 11, 2.0},
	{5, 7, 3.0}, {5, 10, 2.5},
	{6, 12, 0.8},
	{7, 10, 2.0},
	{8, 9, 2.8}, {8, 10, 1.8}, {8, 14, 1.2},
	{9, 10, 3.0},
	{10, 14, 1.5},
	{11, 12, 1.8}, {11, 13, 2.2},
	{12, 13, 1.5},
	{13, 14, 2.0},
}

// DemoNodes and DemoRoads are the sizes of the Demo map.
const (
	DemoNodes = len(demoPlaces)
	DemoRoads = len(demoRoads)
)

// Demo returns a Constructor that adds the built-in Arequipa map.
func Demo() Constructor {
	return func(g *graph.Graph, _ builderConfig) error {
		base := g.NodeCount()
		for i, p := range demoPlaces {
			if err := addNode(methodDemo, g, graph.NewNode(base+i, p.name, p.x, p.y)); err != nil {
				return err
			}
		}
		for _, r := range demoRoads {
			g.ConnectBoth(base+r.a, base+r.b, r.km)
		}

		return nil
	}
}
