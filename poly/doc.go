// Package poly wires the contour and mesh pipelines together: given a
// decoded image and a config.Config, each pipeline produces the same
// oriented-polygon-with-hole-point shape, ready for polyfile.Write.
package poly
