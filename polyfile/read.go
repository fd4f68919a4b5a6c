package polyfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Data is a parsed .poly document: vertices in file order, edges as pairs
// of vertex indices, and hole points.
type Data struct {
	Vertices []Point
	Edges    [][2]int
	Holes    []Point
}

// Point is a parsed coordinate pair (already un-negated back to image Y).
type Point struct {
	X, Y int
}

// Read parses a .poly document, the inverse of Write.
func Read(r io.Reader) (*Data, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("polyfile: empty file")
	}

	vTotal, err := firstInt(lines[0])
	if err != nil {
		return nil, fmt.Errorf("polyfile: vertex header: %w", err)
	}

	data := &Data{}
	for i := 1; i <= vTotal; i++ {
		fields := strings.Fields(lines[i])
		if len(fields) < 3 {
			return nil, fmt.Errorf("polyfile: malformed vertex line %d", i)
		}
		x, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		y, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, err
		}
		data.Vertices = append(data.Vertices, Point{X: x, Y: -y})
	}

	eHeaderIdx := vTotal + 1
	eTotal, err := firstInt(lines[eHeaderIdx])
	if err != nil {
		return nil, fmt.Errorf("polyfile: edge header: %w", err)
	}
	for i := 0; i < eTotal; i++ {
		fields := strings.Fields(lines[eHeaderIdx+1+i])
		if len(fields) < 3 {
			return nil, fmt.Errorf("polyfile: malformed edge line %d", i)
		}
		a, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		b, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, err
		}
		data.Edges = append(data.Edges, [2]int{a, b})
	}

	hHeaderIdx := eHeaderIdx + 1 + eTotal
	if hHeaderIdx >= len(lines) {
		return data, nil
	}
	hTotal, err := firstInt(lines[hHeaderIdx])
	if err != nil {
		return nil, fmt.Errorf("polyfile: hole header: %w", err)
	}
	for i := 0; i < hTotal; i++ {
		idx := hHeaderIdx + 1 + i
		if idx >= len(lines) || len(strings.Fields(lines[idx])) < 3 {
			break
		}
		fields := strings.Fields(lines[idx])
		x, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, err
		}
		y, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, err
		}
		data.Holes = append(data.Holes, Point{X: x, Y: -y})
	}

	return data, nil
}

func firstInt(line string) (int, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty header line")
	}
	return strconv.Atoi(fields[0])
}
