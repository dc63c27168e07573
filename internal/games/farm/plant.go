package farm

// HarvestPoints is awarded for every mature crop harvested or pulled.
const HarvestPoints = 10

// Stage is the visual growth stage of a plant.
type Stage int

const (
	StageSeed Stage = iota
	StageSprout
	StageMature
)

func (s Stage) String() string {
	switch s {
	case StageSeed:
		return "seed"
	case StageSprout:
		return "sprout"
	case StageMature:
		return "mature"
	default:
		return "unknown"
	}
}

// Plant is one growing instance of a species. The counter holds the seconds
// left until maturity. A single long step may carry the counter and the
// soil moisture below zero; growth stops once the counter is at or below zero.
type Plant struct {
	kind    *PlantType
	counter float64
}

// NewPlant creates a freshly sown plant.
func NewPlant(kind *PlantType) *Plant {
	return &Plant{
		kind:    kind,
		counter: kind.sproutTime + kind.growTime,
	}
}

// Kind returns the plant's species.
func (p *Plant) Kind() *PlantType {
	return p.kind
}

// Counter returns the seconds of growth remaining.
func (p *Plant) Counter() float64 {
	return p.counter
}

// Mature reports whether the plant can be harvested.
func (p *Plant) Mature() bool {
	return p.counter <= 0
}

// Advance grows the plant by dt seconds, drawing water from moisture.
// Nothing happens while the soil is dry or the plant is already mature.
func (p *Plant) Advance(dt float64, moisture *float64) {
	if p.counter <= 0 || *moisture <= 0 {
		return
	}
	*moisture -= p.kind.waterUsage * dt
	p.counter -= dt
}

// Harvest awards HarvestPoints for a mature plant and resets it to the start
// of its sprout stage. Returns false, with no effect, for an immature plant.
func (p *Plant) Harvest(score *Score) bool {
	if p.counter > 0 {
		return false
	}
	score.Add(HarvestPoints)
	p.counter = p.kind.sproutTime
	return true
}

// Stage classifies the plant for rendering.
func (p *Plant) Stage() Stage {
	switch {
	case p.counter <= 0:
		return StageMature
	case p.counter <= p.kind.sproutTime:
		return StageSprout
	default:
		return StageSeed
	}
}
