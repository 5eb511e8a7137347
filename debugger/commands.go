package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/testdmg/logger"
	"github.com/jetsetilly/testdmg/tileset"
	"github.com/jetsetilly/testdmg/video"
)

var help = []struct {
	cmd  string
	desc string
}{
	{"RUN", "run the program until interrupted"},
	{"STEP [n]", "run the program for n frames (default 1)"},
	{"RESET", "reset the console and restart the program"},
	{"LCD", "state of the LCD controller"},
	{"INT", "state of the interrupt registers"},
	{"OAM", "objects in object memory"},
	{"SHADOW", "objects in the shadow object table"},
	{"MAP [0|1]", "tile numbers in the tile map"},
	{"TILE n", "pattern of tile n"},
	{"CURSOR", "state of the text console"},
	{"SCROLL [x y]", "show or set the scroll position"},
	{"PRINT text", "write text to the console"},
	{"TILES file", "load a tileset image into the program"},
	{"PEEK addr", "read memory"},
	{"POKE addr value", "write memory"},
	{"DUMP from to", "read a range of memory"},
	{"CONFLICTS", "number of bus conflicts since reset"},
	{"LOG [n]", "the most recent log entries"},
	{"HELP", "this list"},
	{"QUIT", "quit the debugger"},
}

// returns true if debugger is to quit
func (m *debugger) commands(cmd []string) bool {
	if len(cmd) == 0 {
		return false
	}

	switch strings.ToUpper(cmd[0]) {
	case "R", "RUN":
		return m.run(-1)

	case "ST", "STEP":
		n := 1
		if len(cmd) > 1 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil || n < 1 {
				m.printf(m.styles.err, "cannot use STEP %s", cmd[1])
				break // switch
			}
		}
		return m.run(n)

	case "RESET":
		m.reset()

	case "LCD":
		m.print(m.styles.video, m.console.LCD.String())

	case "INT":
		m.print(m.styles.cpu, m.console.Interrupts.String())

	case "OAM":
		m.objects(video.ObjectMemory)

	case "SHADOW":
		m.objects(video.ShadowObjects)

	case "MAP":
		var base uint16 = video.TileMap0
		if len(cmd) > 1 {
			switch cmd[1] {
			case "0":
			case "1":
				base = video.TileMap1
			default:
				m.printf(m.styles.err, "unrecognised tile map: %s", cmd[1])
				return false
			}
		}
		m.tileMap(base)

	case "TILE":
		if len(cmd) < 2 {
			m.print(m.styles.err, "TILE requires a tile number")
			break // switch
		}
		n, err := parseData(cmd[1])
		if err != nil {
			m.printf(m.styles.err, "tile: %s", err.Error())
			break // switch
		}
		m.tile(n)

	case "CURSOR":
		c := m.program.Video.Console
		x, y := c.Cursor()
		xl, yl := c.Limits()
		m.printf(m.styles.video, "cursor=%d,%d limits=%d,%d codepage=0x%02x cell=%d",
			x, y, xl, yl, c.CodePage(), c.Cell())

	case "SCROLL":
		v := m.program.Video.View
		if len(cmd) == 3 {
			x, err := parseData(cmd[1])
			if err != nil {
				m.printf(m.styles.err, "scroll: %s", err.Error())
				break // switch
			}
			y, err := parseData(cmd[2])
			if err != nil {
				m.printf(m.styles.err, "scroll: %s", err.Error())
				break // switch
			}
			err = m.exec(func() {
				v.SetScroll(x, y)
			})
			if err != nil {
				m.print(m.styles.err, err.Error())
			}
		} else if len(cmd) != 1 {
			m.print(m.styles.err, "SCROLL requires both an x and a y value")
			break // switch
		}
		x, y := v.Scroll()
		m.printf(m.styles.video, "scroll=%d,%d base=%d", x, y, v.TileBase())

	case "PRINT":
		if len(cmd) < 2 {
			m.print(m.styles.err, "PRINT requires some text")
			break // switch
		}
		s := strings.Join(cmd[1:], " ")
		err := m.exec(func() {
			fmt.Fprint(m.program.Video.Console, s)
		})
		if err != nil {
			m.print(m.styles.err, err.Error())
		}
		m.console.LCD.PushRender()

	case "TILES":
		if len(cmd) < 2 {
			m.print(m.styles.err, "TILES requires a filename")
			break // switch
		}
		err := m.exec(func() {
			m.loadTileset(cmd[1])
		})
		if err != nil {
			m.print(m.styles.err, err.Error())
		}
		m.console.LCD.PushRender()

	case "PEEK":
		if len(cmd) < 2 {
			m.print(m.styles.err, "PEEK requires an address")
			break // switch
		}

		ma, err := m.parseAddress(cmd[1])
		if err != nil {
			m.printf(m.styles.err, "peek: %s", err.Error())
			break // switch
		}

		data, err := m.console.Mem.Peek(ma.address)
		if err != nil {
			m.printf(m.styles.err, "peek address is not readable: %s", cmd[1])
			break // switch
		}

		m.printf(m.styles.mem, "$%04x = %02x (%s)", ma.address, data, ma.area.Label())

	case "POKE":
		if len(cmd) < 3 {
			m.print(m.styles.err, "POKE requires an address and a value")
			break // switch
		}

		ma, err := m.parseAddress(cmd[1])
		if err != nil {
			m.printf(m.styles.err, "poke: %s", err.Error())
			break // switch
		}

		data, err := parseData(cmd[2])
		if err != nil {
			m.printf(m.styles.err, "poke: %s", err.Error())
			break // switch
		}

		err = m.console.Mem.Poke(ma.address, data)
		if err != nil {
			m.printf(m.styles.err, "poke address is not writable: %s", cmd[1])
			break // switch
		}

		m.printf(m.styles.mem, "$%04x = %02x (%s)", ma.address, data, ma.area.Label())

	case "DUMP":
		if len(cmd) < 3 {
			m.print(m.styles.err, "DUMP requires a 'from' and a 'to' address")
			break // switch
		}

		from, err := m.parseAddress(cmd[1])
		if err != nil {
			m.printf(m.styles.err, "dump: %s", err.Error())
			break // switch
		}

		to, err := m.parseAddress(cmd[2])
		if err != nil {
			m.printf(m.styles.err, "dump: %s", err.Error())
			break // switch
		}

		if to.address < from.address {
			m.print(m.styles.err, "dump: the 'to' address is less than the 'from' address")
			break // switch
		}

		m.dump(from.address, to.address)

	case "CONFLICTS":
		m.print(m.styles.conflict, m.console.LCD.Conflicts.String())

	case "LOG":
		n := -1
		if len(cmd) > 1 {
			var err error
			n, err = strconv.Atoi(cmd[1])
			if err != nil {
				m.printf(m.styles.err, "cannot use LOG %s", cmd[1])
				break // switch
			}
		}
		logger.Tail(m.out, n)

	case "HELP":
		for _, h := range help {
			fmt.Fprintf(m.out, "%-16s %s\n", h.cmd, m.styles.help.Render(h.desc))
		}

	case "Q", "QUIT":
		return true

	default:
		m.printf(m.styles.err, "unrecognised command: %s", strings.Join(cmd, " "))
	}

	return false
}

func (m *debugger) peek(address uint16) uint8 {
	v, _ := m.console.Mem.Peek(address)
	return v
}

func (m *debugger) dump(from uint16, to uint16) {
	var s strings.Builder
	var column int
	for a := int(from); a <= int(to); a++ {
		if column == 0 {
			s.WriteString(fmt.Sprintf("%04x", a))
		}
		data, err := m.console.Mem.Peek(uint16(a))
		if err != nil {
			s.WriteString(" --")
		} else {
			s.WriteString(fmt.Sprintf(" %02x", data))
		}
		column++
		if column > 15 {
			s.WriteString("\n")
			column = 0
		}
	}
	m.print(m.styles.mem, strings.TrimSuffix(s.String(), "\n"))
}

// list the objects in the object table at the address. objects that are not
// on screen are not listed
func (m *debugger) objects(base uint16) {
	var s strings.Builder
	for i := range video.NumObjects {
		a := base + uint16(i*video.BytesPerObject)
		y := m.peek(a)
		x := m.peek(a + 1)
		if y == 0 || y >= 160 || x == 0 || x >= 168 {
			continue // for loop
		}
		s.WriteString(fmt.Sprintf("%02d: x=%d y=%d tile=0x%02x flags=0x%02x\n",
			i, int(x)-8, int(y)-16, m.peek(a+2), m.peek(a+3)))
	}
	if s.Len() == 0 {
		m.print(m.styles.video, "no visible objects")
		return
	}
	m.print(m.styles.video, strings.TrimSuffix(s.String(), "\n"))
}

func (m *debugger) tileMap(base uint16) {
	var s strings.Builder
	for row := range video.MapWidth {
		s.WriteString(fmt.Sprintf("%02d", row))
		for col := range video.MapWidth {
			s.WriteString(fmt.Sprintf(" %02x", m.peek(base+uint16(row*video.MapWidth+col))))
		}
		s.WriteString("\n")
	}
	m.print(m.styles.video, strings.TrimSuffix(s.String(), "\n"))
}

// characters used to draw the four colours of a tile
var shades = [4]rune{'.', ':', 'o', '#'}

func (m *debugger) tile(n uint8) {
	var p video.Pattern
	a := uint16(video.TileData) + uint16(n)*uint16(len(p))
	for i := range p {
		p[i] = m.peek(a + uint16(i))
	}

	img := tileset.Decode(p)
	levels := map[uint8]rune{255: shades[0], 170: shades[1], 85: shades[2], 0: shades[3]}

	var s strings.Builder
	for y := range 8 {
		for x := range 8 {
			s.WriteRune(levels[img.GrayAt(x, y).Y])
		}
		s.WriteString("\n")
	}
	m.print(m.styles.video, strings.TrimSuffix(s.String(), "\n"))
}
