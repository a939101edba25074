package samples

// nitTable is the brightness distribution drawn in the nits section: SDR
// piles up and clips around 80, HDR keeps spreading into the headroom.
var nitTable = []struct{ brightness, sdr, hdr float64 }{
	{0, 0, 0},
	{20, 10, 5},
	{40, 40, 15},
	{60, 80, 30},
	{80, 20, 40},
	{100, 0, 60},
	{120, 0, 50},
	{140, 0, 20},
	{160, 0, 5},
	{180, 0, 0},
}

// SDRClipBrightness is where the SDR distribution runs out of room.
const SDRClipBrightness = 80

// NitDistribution returns the SDR and HDR brightness distributions.
func NitDistribution() (sdr, hdr Series) {
	sdr = Series{Name: "SDR", Points: make([]Point, len(nitTable))}
	hdr = Series{Name: "HDR", Points: make([]Point, len(nitTable))}
	for i, row := range nitTable {
		sdr.Points[i] = Point{X: row.brightness, Y: row.sdr}
		hdr.Points[i] = Point{X: row.brightness, Y: row.hdr}
	}
	return sdr, hdr
}
