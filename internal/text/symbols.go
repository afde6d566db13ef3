// Package text maps characters to glyph tiles and lays out strings inside
// grid regions with word wrapping and nine-way alignment.
package text

// Glyph tiles occupy a contiguous band of the sprite atlas: capitals from
// 78, lowercase from 104, digits from 130, then the symbol table below.
const (
	tileUpperA int32 = 78
	tileLowerA int32 = 104
	tileDigit0 int32 = 130
)

// symbolTiles maps every non-alphanumeric glyph the atlas carries to its
// tile id. Built once, read-only afterwards; safe to share across callers.
var symbolTiles = map[rune]int32{
	'!': 140, '"': 141, '#': 142, '$': 143, '%': 144, '&': 145,
	'\'': 146, '(': 147, ')': 148, '*': 149, '+': 150, ',': 151,
	'-': 152, '.': 153, '/': 154, ':': 155, ';': 156, '<': 157,
	'=': 158, '>': 159, '?': 160, '@': 161, '[': 162, '\\': 163,
	']': 164, '^': 165, '_': 166, '`': 167, '{': 168, '|': 169,
	'}': 170, '~': 171,

	'─': 172, '│': 173, '┌': 174, '┐': 175, '└': 176, '┘': 177,
	'├': 178, '┤': 179, '┬': 180, '┴': 181, '┼': 182,
	'═': 183, '║': 184, '╔': 185, '╗': 186, '╚': 187, '╝': 188,
	'╠': 189, '╣': 190, '╦': 191, '╩': 192, '╬': 193,
	'╒': 194, '╓': 195, '╕': 196, '╖': 197, '╘': 198, '╙': 199,
	'╛': 200, '╜': 201, '╞': 202, '╟': 203, '╡': 204, '╢': 205,
	'╤': 206, '╥': 207, '╧': 208, '╨': 209, '╪': 210, '╫': 211,

	'█': 212, '▄': 213, '▀': 214, '░': 215, '▒': 216, '▓': 217,
	'▌': 218, '▐': 219, '■': 220, '□': 221, '▪': 222, '▫': 223,

	'←': 224, '↑': 225, '→': 226, '↓': 227, '↔': 228, '↕': 229,
	'▲': 230, '►': 231, '▼': 232, '◄': 233, '↨': 234,

	'♠': 235, '♥': 236, '♦': 237, '♣': 238,
	'♩': 239, '♪': 240, '♫': 241, '♬': 242,

	'☺': 243, '☻': 244, '♂': 245, '♀': 246, '☼': 247,
	'○': 248, '●': 249, '◘': 250, '◙': 251, '☆': 252, '★': 253,

	'§': 254, '¶': 255, '†': 256, '‡': 257, '•': 258, '‰': 259,
	'¡': 260, '¿': 261, '°': 262, 'µ': 263,
	'±': 264, '×': 265, '÷': 266, '≈': 267, '≠': 268, '≤': 269,
	'≥': 270, '∞': 271,
	'¢': 272, '£': 273, '¥': 274, '€': 275,

	'Ç': 276, 'ü': 277, 'é': 278, 'â': 279, 'ä': 280, 'à': 281,
	'å': 282, 'ç': 283, 'ê': 284, 'ë': 285, 'è': 286, 'ñ': 287,
	'Ñ': 288, '⌂': 289,
}

// tileRunes is the inverse mapping, used when a grid is shown as plain
// glyphs again (the text command and the terminal viewer).
var tileRunes = func() map[int32]rune {
	m := make(map[int32]rune, len(symbolTiles)+63)
	for r, id := range symbolTiles {
		m[id] = r
	}
	for r := 'A'; r <= 'Z'; r++ {
		m[tileUpperA+r-'A'] = r
	}
	for r := 'a'; r <= 'z'; r++ {
		m[tileLowerA+r-'a'] = r
	}
	for r := '0'; r <= '9'; r++ {
		m[tileDigit0+r-'0'] = r
	}
	m[0] = ' '
	return m
}()

// TileFor returns the glyph tile id for r. Space maps to tile 0, meaning
// "draw nothing" rather than an error. Runes the atlas has no glyph for
// return ok=false; writers skip those without consuming a column.
func TileFor(r rune) (int32, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return tileUpperA + int32(r-'A'), true
	case r >= 'a' && r <= 'z':
		return tileLowerA + int32(r-'a'), true
	case r >= '0' && r <= '9':
		return tileDigit0 + int32(r-'0'), true
	case r == ' ':
		return 0, true
	}
	id, ok := symbolTiles[r]
	return id, ok
}

// RuneFor returns the glyph rune a tile id stands for, if the id belongs
// to the atlas glyph band. Tile 0 reads back as a space.
func RuneFor(id int32) (rune, bool) {
	r, ok := tileRunes[id]
	return r, ok
}
