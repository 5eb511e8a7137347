package clocks

const Mhz = 1000000

// DMG is the dot clock of the LCD. The CPU runs at the same rate but every
// machine cycle takes four dots
const DMG = 4.194304 * Mhz

// MachineCycle is the number of dots in a single machine cycle
const MachineCycle = 4

// CPU is the machine cycle rate
const CPU = DMG / MachineCycle // 1.05MHz
