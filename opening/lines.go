package opening

// A line pairs a move history with the prepared reply. Later entries win
// when a history repeats.
type line struct {
	history string
	reply   string
}

var defaultLines = []line{
	// Ruy Lopez, Berlin Defense
	{"e4 e5", "Nf3"},
	{"e4 e5 Nf3 Nc6", "Bb5"},
	{"e4 e5 Nf3 Nc6 Bb5 Nf6", "O-O"},
	{"e4 e5 Nf3 Nc6 Bb5 Nf6 O-O Nxe4", "d4"},
	{"e4 e5 Nf3 Nc6 Bb5 Nf6 O-O Nxe4 d4 Nd6", "Bxc6"},
	{"e4 e5 Nf3 Nc6 Bb5 Nf6 O-O Nxe4 d4 Nd6 Bxc6 dxc6", "dxe5"},
	{"e4 e5 Nf3 Nc6 Bb5 Nf6 O-O Nxe4 d4 Nd6 Bxc6 dxc6 dxe5 Nf5", "Qxd8+"},
	{"e4 e5 Nf3 Nc6 Bb5 Nf6 O-O Nxe4 d4 Nd6 Bxc6 dxc6 dxe5 Nf5 Qxd8+ Kxd8", "Nc3"},

	// Sicilian Defense, Accelerated Dragon
	{"e4 c5", "Nf3"},
	{"e4 c5 Nf3 Nc6", "d4"},
	{"e4 c5 Nf3 Nc6 d4 cxd4", "Nxd4"},
	{"e4 c5 Nf3 Nc6 d4 cxd4 Nxd4 g6", "Nc3"},
	{"e4 c5 Nf3 Nc6 d4 cxd4 Nxd4 g6 Nc3 Bg7", "Be3"},
	{"e4 c5 Nf3 Nc6 d4 cxd4 Nxd4 g6 Nc3 Bg7 Be3 Nf6", "Bc4"},

	// Accelerated Dragon as Black
	{"e4 c5", "Nf3"},
	{"e4 c5 Nf3 Nc6", "d4"},
	{"e4 c5 Nf3 Nc6 d4 cxd4", "Nxd4"},
	{"e4 c5 Nf3 Nc6 d4 cxd4 Nxd4 g6", "Nc3"},
	{"e4 c5 Nf3 Nc6 d4 cxd4 Nxd4 Bg7", "Be3"},
	{"e4 c5 Nf3 Nc6 d4 cxd4 Nxd4 Bg7 Be3 Nf6", "f3"},
}
