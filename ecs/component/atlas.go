package component

import "image"

// TextureAtlasLayout describes a sprite sheet cut into a uniform grid.
// A layout is immutable once built and shared by pointer.
type TextureAtlasLayout struct {
	cellW   int
	cellH   int
	columns int
	rows    int
}

// NewTextureAtlasLayout builds a grid layout. Non-positive arguments yield nil.
func NewTextureAtlasLayout(cellW, cellH, columns, rows int) *TextureAtlasLayout {
	if cellW <= 0 || cellH <= 0 || columns <= 0 || rows <= 0 {
		return nil
	}
	return &TextureAtlasLayout{cellW: cellW, cellH: cellH, columns: columns, rows: rows}
}

func (l *TextureAtlasLayout) Len() int {
	if l == nil {
		return 0
	}
	return l.columns * l.rows
}

func (l *TextureAtlasLayout) Columns() int { return l.columns }
func (l *TextureAtlasLayout) Rows() int    { return l.rows }

// CellSize returns the pixel size of one frame.
func (l *TextureAtlasLayout) CellSize() (int, int) {
	return l.cellW, l.cellH
}

// Rect returns the sheet rectangle of the frame at index, counting left to
// right then top to bottom.
func (l *TextureAtlasLayout) Rect(index int) (image.Rectangle, bool) {
	if l == nil || index < 0 || index >= l.Len() {
		return image.Rectangle{}, false
	}
	x := (index % l.columns) * l.cellW
	y := (index / l.columns) * l.cellH
	return image.Rect(x, y, x+l.cellW, y+l.cellH), true
}

// Index converts a row and column into a linear frame index.
func (l *TextureAtlasLayout) Index(row, col int) int {
	return row*l.columns + col
}
