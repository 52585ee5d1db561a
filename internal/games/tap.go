package games

import "math"

const (
	tapBaseEnergy      = 1000.0
	tapEnergyPerLevel  = 100.0
	tapRegenBase       = 1.0
	tapRegenPerLevel   = 0.5
	tapComboDecayTicks = 20
	tapTicksPerSecond  = 10
)

type Upgrade int

const (
	UpgradeTapPower Upgrade = iota
	UpgradeEnergyMax
	UpgradeRecharge
	UpgradeAutoEarn
)

// Tap is the idle clicker. Unlike the other engines it has no losing
// condition; the session ends only through EndSession, which reports the
// accumulated balance as the score. The caller ticks the engine every
// 100ms for energy regeneration, combo decay and auto-earn income.
type Tap struct {
	session

	balance   int64
	energy    float64
	maxEnergy float64
	tapPower  int64
	combo     int64
	peakCombo int64
	totalTaps int64

	tapPowerLvl  int
	energyMaxLvl int
	rechargeLvl  int
	autoEarnLvl  int

	ticksSinceTap int
	tickCount     int
}

func NewTap(o Options) *Tap {
	o = o.withDefaults()
	return &Tap{session: newSession(o)}
}

func (g *Tap) Start() {
	if g.state == StatePlaying {
		return
	}
	g.begin()
	g.balance = 0
	g.energy = tapBaseEnergy
	g.maxEnergy = tapBaseEnergy
	g.tapPower = 1
	g.combo = 0
	g.peakCombo = 0
	g.totalTaps = 0
	g.tapPowerLvl = 1
	g.energyMaxLvl = 1
	g.rechargeLvl = 1
	g.autoEarnLvl = 0
	g.ticksSinceTap = 0
	g.tickCount = 0
}

// Tick advances the engine by one 100ms interval.
func (g *Tap) Tick() {
	if g.state != StatePlaying {
		return
	}
	regen := tapRegenBase + float64(g.rechargeLvl)*tapRegenPerLevel
	g.energy = math.Min(g.energy+regen, g.maxEnergy)

	g.ticksSinceTap++
	if g.combo > 0 && g.ticksSinceTap >= tapComboDecayTicks {
		g.combo = 0
	}

	g.tickCount++
	if g.autoEarnLvl > 0 && g.tickCount%tapTicksPerSecond == 0 {
		g.balance += int64(g.autoEarnLvl)
	}
}

// Tap spends tapPower energy and earns (tapPower + combo/10) scaled by the
// combo multiplier. A tap with insufficient energy is ignored.
func (g *Tap) Tap() {
	if g.state != StatePlaying {
		return
	}
	if g.energy < float64(g.tapPower) {
		return
	}
	earned := float64(g.tapPower+g.combo/10) * g.Multiplier()
	g.balance += int64(earned)
	g.energy -= float64(g.tapPower)
	g.combo++
	g.totalTaps++
	if g.combo > g.peakCombo {
		g.peakCombo = g.combo
	}
	g.ticksSinceTap = 0
}

// Multiplier is derived from the current combo streak.
func (g *Tap) Multiplier() float64 {
	switch {
	case g.combo > 50:
		return 3
	case g.combo > 25:
		return 2
	case g.combo > 10:
		return 1.5
	default:
		return 1
	}
}

// UpgradeCost returns the price of the next level of an upgrade.
func (g *Tap) UpgradeCost(u Upgrade) int64 {
	switch u {
	case UpgradeTapPower:
		return int64(math.Floor(50 * math.Pow(1.5, float64(g.tapPowerLvl))))
	case UpgradeEnergyMax:
		return int64(math.Floor(100 * math.Pow(1.6, float64(g.energyMaxLvl))))
	case UpgradeRecharge:
		return int64(math.Floor(75 * math.Pow(1.4, float64(g.rechargeLvl))))
	case UpgradeAutoEarn:
		return int64(math.Floor(200 * math.Pow(2, float64(g.autoEarnLvl))))
	}
	return 0
}

// Buy purchases one level of an upgrade out of the current balance.
// Returns false when the balance cannot cover the cost.
func (g *Tap) Buy(u Upgrade) bool {
	if g.state != StatePlaying {
		return false
	}
	cost := g.UpgradeCost(u)
	if g.balance < cost {
		return false
	}
	g.balance -= cost
	switch u {
	case UpgradeTapPower:
		g.tapPowerLvl++
		g.tapPower++
	case UpgradeEnergyMax:
		g.energyMaxLvl++
		g.maxEnergy += tapEnergyPerLevel
		g.energy += tapEnergyPerLevel
	case UpgradeRecharge:
		g.rechargeLvl++
	case UpgradeAutoEarn:
		g.autoEarnLvl++
	}
	return true
}

// EndSession closes the session and reports the balance as the score.
func (g *Tap) EndSession() {
	g.finish(g.balance)
}

func (g *Tap) Balance() int64  { return g.balance }
func (g *Tap) Energy() float64 { return g.energy }
func (g *Tap) Combo() int64    { return g.combo }
