package game

// Pitch is a General MIDI percussion note number.
type Pitch uint8

const (
	Kick         Pitch = 36
	Snare        Pitch = 38
	ClosedHiHat  Pitch = 42
	OpenHiHat    Pitch = 46
	LowFloorTom  Pitch = 41
	HighFloorTom Pitch = 43
	LowMidTom    Pitch = 45
	MidTom       Pitch = 47
	HighMidTom   Pitch = 48
	HighTom      Pitch = 50
	Crash        Pitch = 49
	Ride         Pitch = 51
	China        Pitch = 53
	Splash       Pitch = 55
	Crash2       Pitch = 57
)

const (
	VoiceCount = 15
	laneHeight = 50
)

// Voices lists every playable voice in lane order, top to bottom.
var Voices = [VoiceCount]Pitch{
	Kick, Snare, ClosedHiHat, OpenHiHat,
	LowFloorTom, HighFloorTom, LowMidTom, MidTom, HighMidTom, HighTom,
	Crash, Ride, China, Splash, Crash2,
}

// VoicesByNote lists the voices by ascending note number.
var VoicesByNote = [VoiceCount]Pitch{
	Kick, Snare, LowFloorTom, ClosedHiHat, HighFloorTom,
	LowMidTom, OpenHiHat, MidTom, HighMidTom, Crash,
	HighTom, Ride, China, Splash, Crash2,
}

var (
	Toms     = [...]Pitch{LowFloorTom, HighFloorTom, LowMidTom, MidTom, HighMidTom, HighTom}
	Cymbals  = [...]Pitch{Crash, Ride, China, Splash, Crash2}
	voiceIdx = map[Pitch]int{}
	names    = map[Pitch]string{
		Kick:         "Kick",
		Snare:        "Snare",
		ClosedHiHat:  "Hi-Hat",
		OpenHiHat:    "Open Hi-Hat",
		LowFloorTom:  "Low Floor Tom",
		HighFloorTom: "High Floor Tom",
		LowMidTom:    "Low Mid Tom",
		MidTom:       "Mid Tom",
		HighMidTom:   "High Mid Tom",
		HighTom:      "High Tom",
		Crash:        "Crash Cymbal",
		Ride:         "Ride Cymbal",
		China:        "Chinese Cymbal",
		Splash:       "Splash Cymbal",
		Crash2:       "Crash Cymbal 2",
	}
)

func init() {
	for i, p := range Voices {
		voiceIdx[p] = i
	}
}

// Valid reports whether p is one of the fifteen voices.
func (p Pitch) Valid() bool {
	_, ok := voiceIdx[p]
	return ok
}

// Index is the lane index of the voice, or -1.
func (p Pitch) Index() int {
	i, ok := voiceIdx[p]
	if !ok {
		return -1
	}
	return i
}

// Lane is the vertical coordinate of the voice's lane.
func (p Pitch) Lane() int {
	i := p.Index()
	if i < 0 {
		return -1
	}
	return i * laneHeight
}

func (p Pitch) String() string {
	if n, ok := names[p]; ok {
		return n
	}
	return "Unknown"
}

// PitchByName resolves a voice from its display name or a short alias.
func PitchByName(name string) (Pitch, bool) {
	for p, n := range names {
		if n == name {
			return p, true
		}
	}
	p, ok := aliases[name]
	return p, ok
}

var aliases = map[string]Pitch{
	"kick":           Kick,
	"snare":          Snare,
	"hihat":          ClosedHiHat,
	"open-hihat":     OpenHiHat,
	"low-floor-tom":  LowFloorTom,
	"high-floor-tom": HighFloorTom,
	"low-mid-tom":    LowMidTom,
	"mid-tom":        MidTom,
	"high-mid-tom":   HighMidTom,
	"high-tom":       HighTom,
	"crash":          Crash,
	"ride":           Ride,
	"china":          China,
	"splash":         Splash,
	"crash2":         Crash2,
}
