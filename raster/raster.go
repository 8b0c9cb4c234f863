// Package raster reads and writes elevation grids in the ESRI ASCII grid
// (.asc) interchange format, bridging persisted rasters to dem.Grid.
package raster

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maseology/mmio"

	"github.com/katalvlaran/relief/dem"
)

// ReadASC parses the ESRI ASCII grid at path into a dem.Grid plus its
// Header. The six header keys are matched case-insensitively; xllcorner and
// xllcenter are both accepted (likewise for y), and a missing NODATA_value
// line defaults to DefaultNoData. Data values may wrap across lines; the
// total count must equal nrows×ncols or ErrBadCellCount is returned.
// Complexity: O(nrows×ncols).
func ReadASC(path string) (*dem.Grid, Header, error) {
	lines, err := mmio.ReadTextLines(path)
	if err != nil {
		return nil, Header{}, fmt.Errorf("raster: reading %s: %w", path, err)
	}

	hdr, body, err := parseHeader(lines)
	if err != nil {
		return nil, Header{}, err
	}

	vals := make([]float64, 0, hdr.NRows*hdr.NCols)
	for _, ln := range body {
		for _, tok := range strings.Fields(ln) {
			v, err := strconv.ParseFloat(tok, 64)
			if err != nil {
				return nil, Header{}, fmt.Errorf("%w: bad cell value %q", ErrBadCellCount, tok)
			}
			vals = append(vals, v)
		}
	}
	if len(vals) != hdr.NRows*hdr.NCols {
		return nil, Header{}, fmt.Errorf("%w: got %d values, want %d", ErrBadCellCount, len(vals), hdr.NRows*hdr.NCols)
	}

	rows := make([][]float64, hdr.NRows)
	for r := 0; r < hdr.NRows; r++ {
		rows[r] = vals[r*hdr.NCols : (r+1)*hdr.NCols]
	}
	g, err := dem.New(rows, hdr.NoData)
	if err != nil {
		return nil, Header{}, err
	}

	return g, hdr, nil
}

// WriteASC writes g to path as an ESRI ASCII grid under the given header.
// The header's NCols/NRows/NoData are taken from the grid itself so the
// file always matches the data; XLL, YLL and CellSize pass through from
// hdr. Values are formatted with %g.
// Complexity: O(rows×cols).
func WriteASC(path string, g *dem.Grid, hdr Header) error {
	lines := make([]string, 0, g.Rows()+6)
	lines = append(lines,
		fmt.Sprintf("ncols %d", g.Cols()),
		fmt.Sprintf("nrows %d", g.Rows()),
		fmt.Sprintf("xllcorner %g", hdr.XLL),
		fmt.Sprintf("yllcorner %g", hdr.YLL),
		fmt.Sprintf("cellsize %g", hdr.CellSize),
		fmt.Sprintf("NODATA_value %g", g.NoData()),
	)
	for _, row := range g.Values() {
		cells := make([]string, len(row))
		for c, v := range row {
			cells[c] = strconv.FormatFloat(v, 'g', -1, 64)
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	if err := mmio.WriteStrings(path, lines); err != nil {
		return fmt.Errorf("raster: writing %s: %w", path, err)
	}

	return nil
}

// parseHeader consumes the leading key/value header lines and returns the
// populated Header plus the remaining data lines. ncols, nrows, the two
// origin keys and cellsize are required, in any order; NODATA_value is
// optional.
func parseHeader(lines []string) (Header, []string, error) {
	hdr := Header{NoData: DefaultNoData}
	var haveCols, haveRows, haveX, haveY, haveCS bool

	i := 0
	for ; i < len(lines); i++ {
		fields := strings.Fields(lines[i])
		if len(fields) == 0 {
			continue // blank line
		}
		key := strings.ToLower(fields[0])
		if _, err := strconv.ParseFloat(key, 64); err == nil {
			break // first data row
		}
		if len(fields) != 2 {
			return Header{}, nil, fmt.Errorf("%w: line %q", ErrBadHeader, lines[i])
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return Header{}, nil, fmt.Errorf("%w: bad value in line %q", ErrBadHeader, lines[i])
		}
		switch key {
		case "ncols":
			hdr.NCols, haveCols = int(v), true
		case "nrows":
			hdr.NRows, haveRows = int(v), true
		case "xllcorner", "xllcenter":
			hdr.XLL, haveX = v, true
		case "yllcorner", "yllcenter":
			hdr.YLL, haveY = v, true
		case "cellsize":
			hdr.CellSize, haveCS = v, true
		case "nodata_value":
			hdr.NoData = v
		default:
			return Header{}, nil, fmt.Errorf("%w: unknown key %q", ErrBadHeader, fields[0])
		}
	}
	if !haveCols || !haveRows || !haveX || !haveY || !haveCS {
		return Header{}, nil, fmt.Errorf("%w: missing required keys", ErrBadHeader)
	}
	if hdr.NCols <= 0 || hdr.NRows <= 0 {
		return Header{}, nil, fmt.Errorf("%w: non-positive dimensions %dx%d", ErrBadHeader, hdr.NRows, hdr.NCols)
	}

	return hdr, lines[i:], nil
}
