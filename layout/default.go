package layout

import "github.com/katalvlaran/aislenav/gridgraph"

// Border codes of the built-in plan. Any non-walkable code blocks movement;
// distinct values only tell the pieces apart when drawing the plan.
const (
	codeWallSide        = 3
	codeWallHorizontal  = 4
	codeCornerTopRight  = 5
	codeCornerTopLeft   = 6
	codeCornerBotLeft   = 7
	codeCornerBotRight  = 8
	defaultRows         = 28
	defaultCols         = 35
	shelfHeight         = 3
	shelfWidth          = 5
	firstShelfRow       = 3
	shelfRowPitch       = 5
	firstShelfCol       = 3
	shelfColPitch       = 8
	shelvesPerRow       = 4
	shelfRowCount       = 5
	entranceFirstColumn = 16
	entranceWidth       = 3
)

// defaultAreas lists the shelves row by row, left to right.
var defaultAreas = [shelfRowCount * shelvesPerRow]struct{ name, key, desc string }{
	{"dairy", "1", "Shelf 1: fresh milk, boxed milk, bottled water"},
	{"staples", "2", "Shelf 2: rice, salt, sugar, spices"},
	{"snacks", "3", "Shelf 3: sweets, snacks, treats"},
	{"noodles", "4", "Shelf 4: instant noodles, ready meals"},
	{"produce", "5", "Shelf 5: fresh vegetables, fruit"},
	{"meat", "6", "Shelf 6: fresh meat, fish, seafood"},
	{"beverages", "7", "Shelf 7: beer, wine, spirits"},
	{"frozen", "8", "Shelf 8: frozen food"},
	{"household", "9", "Shelf 9: household goods, kitchenware"},
	{"cosmetics", "0", "Shelf 10: cosmetics, skin care"},
	{"pharmacy", "q", "Shelf 11: medicine, medical supplies"},
	{"baby", "w", "Shelf 12: baby goods"},
	{"cleaning", "e", "Shelf 13: detergents, cleaning supplies"},
	{"pets", "r", "Shelf 14: pet food, pet supplies"},
	{"electronics", "t", "Shelf 15: electronics, accessories"},
	{"stationery", "y", "Shelf 16: books, stationery"},
	{"toys", "u", "Shelf 17: children's toys"},
	{"sports", "i", "Shelf 18: sports equipment"},
	{"seasonal", "o", "Shelf 19: seasonal and holiday goods"},
	{"bakery", "p", "Shelf 20: bread, pastries"},
}

// Default returns the built-in 28×35 supermarket: a walled floor, five rows
// of four 3×5 shelves separated by two-cell aisles, and a three-cell
// entrance at the bottom centre. The start is next to the entrance.
func Default() *Layout {
	grid := make([][]int, defaultRows)
	for r := range grid {
		row := make([]int, defaultCols)
		row[0], row[defaultCols-1] = codeWallSide, codeWallSide
		grid[r] = row
	}
	for c := 1; c < defaultCols-1; c++ {
		grid[0][c] = codeWallHorizontal
		grid[defaultRows-1][c] = codeWallHorizontal
	}
	grid[0][0], grid[0][defaultCols-1] = codeCornerTopLeft, codeCornerTopRight
	grid[defaultRows-1][0], grid[defaultRows-1][defaultCols-1] = codeCornerBotLeft, codeCornerBotRight
	for c := entranceFirstColumn; c < entranceFirstColumn+entranceWidth; c++ {
		grid[defaultRows-2][c] = gridgraph.CodeEntrance
		grid[defaultRows-1][c] = gridgraph.CodeEntrance
	}

	areas := make([]Area, 0, len(defaultAreas))
	for i, meta := range defaultAreas {
		top := firstShelfRow + (i/shelvesPerRow)*shelfRowPitch
		left := firstShelfCol + (i%shelvesPerRow)*shelfColPitch
		cells := make([]Point, 0, shelfHeight*shelfWidth)
		for r := top; r < top+shelfHeight; r++ {
			for c := left; c < left+shelfWidth; c++ {
				grid[r][c] = gridgraph.CodeShelf
				cells = append(cells, Point{Row: r, Col: c})
			}
		}
		areas = append(areas, Area{Name: meta.name, Key: meta.key, Description: meta.desc, Cells: cells})
	}

	return &Layout{
		Name:  "supermarket",
		Start: &Point{Row: defaultRows - 2, Col: entranceFirstColumn + 1},
		Grid:  grid,
		Areas: areas,
	}
}
