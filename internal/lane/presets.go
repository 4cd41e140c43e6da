package lane

// Preset names a fixed, hand-authored lane arrangement. Each table
// reflects a physical kit layout rather than anything derived; edit
// with a kit in front of you.
type Preset int

const (
	PresetFourLane Preset = iota
	PresetFiveLane
	PresetSixLane
	PresetSevenLane
	PresetEightLane
	PresetNineLane
)

func (p Preset) String() string {
	switch p {
	case PresetFourLane:
		return "4-lane"
	case PresetFiveLane:
		return "5-lane"
	case PresetSixLane:
		return "6-lane"
	case PresetSevenLane:
		return "7-lane"
	case PresetEightLane:
		return "8-lane"
	case PresetNineLane:
		return "9-lane"
	}
	return "unknown"
}

func (p Preset) LaneCount() int {
	switch p {
	case PresetFourLane:
		return 4
	case PresetFiveLane:
		return 5
	case PresetSixLane:
		return 6
	case PresetSevenLane:
		return 7
	case PresetEightLane:
		return 8
	case PresetNineLane:
		return 9
	}
	return 7
}

// PresetForLaneCount maps a configured lane count to a preset,
// clamping to the supported 4..9 range.
func PresetForLaneCount(n int) Preset {
	switch {
	case n <= 4:
		return PresetFourLane
	case n == 5:
		return PresetFiveLane
	case n == 6:
		return PresetSixLane
	case n == 7:
		return PresetSevenLane
	case n == 8:
		return PresetEightLane
	}
	return PresetNineLane
}

var presetTables = map[Preset]map[Category][]int{
	// Hi-hat and crash share the left edge, everything metal on the
	// right edge.
	PresetFourLane: {
		Kick:        {2},
		Snare:       {1},
		Rimshot:     {1},
		CrossStick:  {1},
		HiHatClosed: {0},
		HiHatOpen:   {0},
		HiHatPedal:  {0},
		TomHigh:     {3},
		TomMid:      {3},
		TomLow:      {3},
		Ride:        {3},
		Crash:       {0, 3},
		China:       {3},
		Splash:      {3},
		Cowbell:     {3},
		Percussion:  {3},
		Unknown:     {2},
	},
	PresetFiveLane: {
		Kick:        {2},
		Snare:       {1},
		Rimshot:     {1},
		CrossStick:  {1},
		HiHatClosed: {0},
		HiHatOpen:   {0},
		HiHatPedal:  {0},
		TomHigh:     {3},
		TomMid:      {3},
		TomLow:      {3},
		Ride:        {4},
		Crash:       {0, 4},
		China:       {4},
		Splash:      {4},
		Cowbell:     {4},
		Percussion:  {3},
		Unknown:     {2},
	},
	PresetSixLane: {
		Kick:        {2},
		Snare:       {1},
		Rimshot:     {1},
		CrossStick:  {1},
		HiHatClosed: {0},
		HiHatOpen:   {0},
		HiHatPedal:  {0},
		TomHigh:     {3},
		TomMid:      {3},
		TomLow:      {4},
		Ride:        {5},
		Crash:       {0, 5},
		China:       {5},
		Splash:      {5},
		Cowbell:     {4},
		Percussion:  {4},
		Unknown:     {2},
	},
	// Kick centred, snare centre-left, hi-hat on the left edge, toms
	// right of centre, metals on the right edge with the crash
	// doubled onto the left edge for symmetry.
	PresetSevenLane: {
		Kick:        {3},
		Snare:       {2},
		Rimshot:     {2},
		CrossStick:  {2},
		HiHatClosed: {1},
		HiHatOpen:   {1},
		HiHatPedal:  {0},
		TomHigh:     {5},
		TomMid:      {5},
		TomLow:      {4},
		Ride:        {6},
		Crash:       {0, 6},
		China:       {6},
		Splash:      {6},
		Cowbell:     {5},
		Percussion:  {5},
		Unknown:     {3},
	},
	PresetEightLane: {
		Kick:        {3},
		Snare:       {2},
		Rimshot:     {2},
		CrossStick:  {2},
		HiHatClosed: {1},
		HiHatOpen:   {1},
		HiHatPedal:  {0},
		TomHigh:     {4},
		TomMid:      {5},
		TomLow:      {5},
		Ride:        {6},
		Crash:       {0, 7},
		China:       {7},
		Splash:      {7},
		Cowbell:     {4},
		Percussion:  {4},
		Unknown:     {3},
	},
	PresetNineLane: {
		Kick:        {4},
		Snare:       {3},
		Rimshot:     {3},
		CrossStick:  {3},
		HiHatClosed: {1},
		HiHatOpen:   {1},
		HiHatPedal:  {0},
		TomHigh:     {5},
		TomMid:      {6},
		TomLow:      {7},
		Ride:        {8},
		Crash:       {2, 8},
		China:       {8},
		Splash:      {2},
		Cowbell:     {2},
		Percussion:  {2},
		Unknown:     {4},
	},
}
