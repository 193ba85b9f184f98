package render

// 3x5 block digits used for the score.
var letters = map[string][5]string{
	"0": {"###", "#.#", "#.#", "#.#", "###"},
	"1": {".#.", "##.", ".#.", ".#.", "###"},
	"2": {"###", "..#", "###", "#..", "###"},
	"3": {"###", "..#", "###", "..#", "###"},
	"4": {"#.#", "#.#", "###", "..#", "..#"},
	"5": {"###", "#..", "###", "..#", "###"},
	"6": {"###", "#..", "###", "#.#", "###"},
	"7": {"###", "..#", "..#", "..#", "..#"},
	"8": {"###", "#.#", "###", "#.#", "###"},
	"9": {"###", "#.#", "###", "..#", "###"},
}

const LetterWidth = 3
const LetterHeight = 5

// GetCellsFromChar returns the (col, row) cells lit for a digit. Unknown
// characters have no cells.
func GetCellsFromChar(char string) [][2]int {
	rows, ok := letters[char]
	if !ok {
		return nil
	}

	var cells [][2]int
	for r, line := range rows {
		for c, ch := range line {
			if ch == '#' {
				cells = append(cells, [2]int{c, r})
			}
		}
	}
	return cells
}
