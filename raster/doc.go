// Package raster reads and writes dem.Grid elevation rasters in the ESRI
// ASCII grid (.asc) interchange format.
//
// What:
//
//   - ReadASC parses a six-key text header (ncols, nrows, xllcorner,
//     yllcorner, cellsize, optional NODATA_value) followed by row-major
//     cell values, and returns a dem.Grid plus the Header.
//   - WriteASC is the inverse; dimensions and the no-data sentinel always
//     come from the grid so the file cannot contradict the data.
//
// Why:
//
//   - .asc is the text interchange format ArcInfo and GDAL both emit, so
//     any raster toolchain can hand DEMs to this library and take
//     conditioned grids back without binary format codecs.
//
// Not here:
//
//   - Coordinate reference systems: the origin and cell size pass through
//     verbatim.
//   - Binary formats (GeoTIFF, ArcInfo binary grids): those need GDAL and
//     cgo; convert with gdal_translate -of AAIGrid.
//
// Errors:
//
//   - ErrBadHeader: malformed or incomplete header.
//   - ErrBadCellCount: data section does not hold nrows×ncols values.
package raster
