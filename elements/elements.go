// Package elements holds process-wide constant lookup tables for chemical
// elements: symbol/nuclear-charge mappings, extended periodic-table
// positions, and Madelung-style quantum-number tuples. The tables are
// initialized once and never written afterwards, so they are safe for
// concurrent reads without synchronization.
package elements

// MaxAtomicNumber is the largest atomic number covered by the periodic-table
// and quantum-number tables.
const MaxAtomicNumber = 118

// Position is a (period, group) coordinate in the extended periodic table.
// Lanthanides and actinides occupy extended group columns 19-33.
type Position struct {
	Period int
	Group  int
}

// Orbital holds the quantum-number tuple assigned to an element by the
// Madelung-like aufbau filling order: principal level N, signed sublevel
// offset M, sublevel count L, and a spin-like tag S of +1/2 or -1/2.
type Orbital struct {
	N int
	M int
	L int
	S float64
}

// Symbol returns the element symbol for a nuclear charge.
func Symbol(z int) (string, bool) {
	s, ok := symbols[z]
	return s, ok
}

// AtomicNumber returns the nuclear charge for an element symbol.
func AtomicNumber(symbol string) (int, bool) {
	z, ok := nuclearCharges[symbol]
	return z, ok
}

// PeriodicPosition returns the extended periodic-table position of an
// element.
func PeriodicPosition(z int) (Position, bool) {
	p, ok := periodicPositions[z]
	return p, ok
}

// QuantumNumbers returns the aufbau quantum-number tuple of an element.
func QuantumNumbers(z int) (Orbital, bool) {
	o, ok := orbitals[z]
	return o, ok
}

var symbols = map[int]string{
	1: "H", 2: "He", 3: "Li", 4: "Be", 5: "B", 6: "C", 7: "N", 8: "O",
	9: "F", 10: "Ne", 11: "Na", 12: "Mg", 13: "Al", 14: "Si", 15: "P",
	16: "S", 17: "Cl", 18: "Ar", 19: "K", 20: "Ca", 21: "Sc", 22: "Ti",
	23: "V", 24: "Cr", 25: "Mn", 26: "Fe", 27: "Co", 28: "Ni", 29: "Cu",
	30: "Zn", 31: "Ga", 32: "Ge", 33: "As", 34: "Se", 35: "Br", 36: "Kr",
	37: "Rb", 38: "Sr", 39: "Y", 40: "Zr", 41: "Nb", 42: "Mo", 43: "Tc",
	44: "Ru", 45: "Rh", 46: "Pd", 47: "Ag", 48: "Cd", 49: "In", 50: "Sn",
	51: "Sb", 52: "Te", 53: "I", 54: "Xe", 55: "Cs", 56: "Ba", 57: "La",
	58: "Ce", 59: "Pr", 60: "Nd", 61: "Pm", 62: "Sm", 63: "Eu", 64: "Gd",
	65: "Tb", 66: "Dy", 67: "Ho", 68: "Er", 69: "Tm", 70: "Yb", 71: "Lu",
	72: "Hf", 73: "Ta", 74: "W", 75: "Re", 76: "Os", 77: "Ir", 78: "Pt",
	79: "Au", 80: "Hg", 81: "Tl", 82: "Pb", 83: "Bi", 84: "Po", 85: "At",
	86: "Rn", 87: "Fr", 88: "Ra", 89: "Ac", 90: "Th", 91: "Pa", 92: "U",
	93: "Np", 94: "Pu", 95: "Am", 96: "Cm", 97: "Bk", 98: "Cf", 99: "Es",
	100: "Fm", 101: "Md", 102: "No", 103: "Lr", 104: "Rf", 105: "Db",
	106: "Sg", 107: "Bh", 108: "Hs", 109: "Mt", 110: "Ds", 111: "Rg",
	112: "Cn", 114: "Uuq", 116: "Uuh",
}

var nuclearCharges = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for z, s := range symbols {
		m[s] = z
	}
	return m
}()

// periodicPositions places every element at its (period, group) coordinate.
// Transition metals sit in columns 9-18, the main groups in 1-8, and the
// f-block rows in extended columns 19-33. Elements 101 and 102 carry the
// corrected coordinates [7,31] and [7,32]; the upstream data table assigned
// column 31 and 32 both to 101 and misplaced 102 at [7,14].
var periodicPositions = map[int]Position{
	// Period 1
	1: {1, 1}, 2: {1, 8},
	// Period 2
	3: {2, 1}, 4: {2, 2},
	5: {2, 3}, 6: {2, 4}, 7: {2, 5}, 8: {2, 6}, 9: {2, 7}, 10: {2, 8},
	// Period 3
	11: {3, 1}, 12: {3, 2},
	13: {3, 3}, 14: {3, 4}, 15: {3, 5}, 16: {3, 6}, 17: {3, 7}, 18: {3, 8},
	// Period 4
	19: {4, 1}, 20: {4, 2},
	31: {4, 3}, 32: {4, 4}, 33: {4, 5}, 34: {4, 6}, 35: {4, 7}, 36: {4, 8},
	21: {4, 9}, 22: {4, 10}, 23: {4, 11}, 24: {4, 12}, 25: {4, 13},
	26: {4, 14}, 27: {4, 15}, 28: {4, 16}, 29: {4, 17}, 30: {4, 18},
	// Period 5
	37: {5, 1}, 38: {5, 2},
	49: {5, 3}, 50: {5, 4}, 51: {5, 5}, 52: {5, 6}, 53: {5, 7}, 54: {5, 8},
	39: {5, 9}, 40: {5, 10}, 41: {5, 11}, 42: {5, 12}, 43: {5, 13},
	44: {5, 14}, 45: {5, 15}, 46: {5, 16}, 47: {5, 17}, 48: {5, 18},
	// Period 6
	55: {6, 1}, 56: {6, 2},
	81: {6, 3}, 82: {6, 4}, 83: {6, 5}, 84: {6, 6}, 85: {6, 7}, 86: {6, 8},
	72: {6, 10}, 73: {6, 11}, 74: {6, 12}, 75: {6, 13}, 76: {6, 14},
	77: {6, 15}, 78: {6, 16}, 79: {6, 17}, 80: {6, 18},
	57: {6, 19}, 58: {6, 20}, 59: {6, 21}, 60: {6, 22}, 61: {6, 23},
	62: {6, 24}, 63: {6, 25}, 64: {6, 26}, 65: {6, 27}, 66: {6, 28},
	67: {6, 29}, 68: {6, 30}, 69: {6, 31}, 70: {6, 32}, 71: {6, 33},
	// Period 7
	87: {7, 1}, 88: {7, 2},
	113: {7, 3}, 114: {7, 4}, 115: {7, 5}, 116: {7, 6}, 117: {7, 7}, 118: {7, 8},
	104: {7, 10}, 105: {7, 11}, 106: {7, 12}, 107: {7, 13}, 108: {7, 14},
	109: {7, 15}, 110: {7, 16}, 111: {7, 17}, 112: {7, 18},
	89: {7, 19}, 90: {7, 20}, 91: {7, 21}, 92: {7, 22}, 93: {7, 23},
	94: {7, 24}, 95: {7, 25}, 96: {7, 26}, 97: {7, 27}, 98: {7, 28},
	99: {7, 29}, 100: {7, 30}, 101: {7, 31}, 102: {7, 32}, 103: {7, 33},
}

// orbitals follows the aufbau shell-filling order of the upstream table,
// including its placement of lutetium and lawrencium in the d-block.
var orbitals = map[int]Orbital{
	// Period 1
	1: {1, 0, 0, 0.5}, 2: {1, 0, 0, -0.5},
	// Period 2
	3: {2, 0, 0, 0.5}, 4: {2, 0, 0, -0.5},
	5: {2, -1, 1, 0.5}, 6: {2, 0, 1, 0.5}, 7: {2, 1, 1, 0.5},
	8: {2, -1, 1, -0.5}, 9: {2, 0, 1, -0.5}, 10: {2, 1, 1, -0.5},
	// Period 3
	11: {3, 0, 0, 0.5}, 12: {3, 0, 0, -0.5},
	13: {3, -1, 1, 0.5}, 14: {3, 0, 1, 0.5}, 15: {3, 1, 1, 0.5},
	16: {3, -1, 1, -0.5}, 17: {3, 0, 1, -0.5}, 18: {3, 1, 1, -0.5},
	// Period 4
	19: {4, 0, 0, 0.5}, 20: {4, 0, 0, -0.5},
	31: {4, -1, 2, 0.5}, 32: {4, 0, 1, 0.5}, 33: {4, 1, 1, 0.5},
	34: {4, -1, 1, -0.5}, 35: {4, 0, 1, -0.5}, 36: {4, 1, 1, -0.5},
	21: {4, -2, 2, 0.5}, 22: {4, -1, 2, 0.5}, 23: {4, 0, 2, 0.5},
	24: {4, 1, 2, 0.5}, 25: {4, 2, 2, 0.5},
	26: {4, -2, 2, -0.5}, 27: {4, -1, 2, -0.5}, 28: {4, 0, 2, -0.5},
	29: {4, 1, 2, -0.5}, 30: {4, 2, 2, -0.5},
	// Period 5
	37: {5, 0, 0, 0.5}, 38: {5, 0, 0, -0.5},
	49: {5, -1, 1, 0.5}, 50: {5, 0, 1, 0.5}, 51: {5, 1, 1, 0.5},
	52: {5, -1, 1, -0.5}, 53: {5, 0, 1, -0.5}, 54: {5, 1, 1, -0.5},
	39: {5, -2, 2, 0.5}, 40: {5, -1, 2, 0.5}, 41: {5, 0, 2, 0.5},
	42: {5, 1, 2, 0.5}, 43: {5, 2, 2, 0.5},
	44: {5, -2, 2, -0.5}, 45: {5, -1, 2, -0.5}, 46: {5, 0, 2, -0.5},
	47: {5, 1, 2, -0.5}, 48: {5, 2, 2, -0.5},
	// Period 6
	55: {6, 0, 0, 0.5}, 56: {6, 0, 0, -0.5},
	81: {6, -1, 1, 0.5}, 82: {6, 0, 1, 0.5}, 83: {6, 1, 1, 0.5},
	84: {6, -1, 1, -0.5}, 85: {6, 0, 1, -0.5}, 86: {6, 1, 1, -0.5},
	71: {6, -2, 2, 0.5}, 72: {6, -1, 2, 0.5}, 73: {6, 0, 2, 0.5},
	74: {6, 1, 2, 0.5}, 75: {6, 2, 2, 0.5},
	76: {6, -2, 2, -0.5}, 77: {6, -1, 2, -0.5}, 78: {6, 0, 2, -0.5},
	79: {6, 1, 2, -0.5}, 80: {6, 2, 2, -0.5},
	57: {6, -3, 3, 0.5}, 58: {6, -2, 3, 0.5}, 59: {6, -1, 3, 0.5},
	60: {6, 0, 3, 0.5}, 61: {6, 1, 3, 0.5}, 62: {6, 2, 3, 0.5},
	63: {6, 3, 3, 0.5},
	64: {6, -3, 3, -0.5}, 65: {6, -2, 3, -0.5}, 66: {6, -1, 3, -0.5},
	67: {6, 0, 3, -0.5}, 68: {6, 1, 3, -0.5}, 69: {6, 2, 3, -0.5},
	70: {6, 3, 3, -0.5},
	// Period 7
	87: {7, 0, 0, 0.5}, 88: {7, 0, 0, -0.5},
	113: {7, -1, 1, 0.5}, 114: {7, 0, 1, 0.5}, 115: {7, 1, 1, 0.5},
	116: {7, -1, 1, -0.5}, 117: {7, 0, 1, -0.5}, 118: {7, 1, 1, -0.5},
	103: {7, -2, 2, 0.5}, 104: {7, -1, 2, 0.5}, 105: {7, 0, 2, 0.5},
	106: {7, 1, 2, 0.5}, 107: {7, 2, 2, 0.5},
	108: {7, -2, 2, -0.5}, 109: {7, -1, 2, -0.5}, 110: {7, 0, 2, -0.5},
	111: {7, 1, 2, -0.5}, 112: {7, 2, 2, -0.5},
	89: {7, -3, 3, 0.5}, 90: {7, -2, 3, 0.5}, 91: {7, -1, 3, 0.5},
	92: {7, 0, 3, 0.5}, 93: {7, 1, 3, 0.5}, 94: {7, 2, 3, 0.5},
	95: {7, 3, 3, 0.5},
	96: {7, -3, 3, -0.5}, 97: {7, -2, 3, -0.5}, 98: {7, -1, 3, -0.5},
	99: {7, 0, 3, -0.5}, 100: {7, 1, 3, -0.5}, 101: {7, 2, 3, -0.5},
	102: {7, 3, 3, -0.5},
}
