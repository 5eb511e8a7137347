package debugger

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jetsetilly/testdmg/hardware/memory"
)

type mappedAddress struct {
	address uint16
	area    memory.Area
}

func (m *debugger) parseAddress(address string) (mappedAddress, error) {
	var ma mappedAddress

	if strings.HasPrefix(address, "$") {
		address = fmt.Sprintf("0x%s", address[1:])
	}

	addr, err := strconv.ParseUint(address, 0, 16)
	if err != nil {
		return ma, fmt.Errorf("address is not valid: %s", address)
	}
	ma.address = uint16(addr)

	_, ma.area = m.console.Mem.MapAddress(ma.address)
	if ma.area == nil {
		return ma, fmt.Errorf("address is not mapped: %s", address)
	}

	return ma, nil
}

// parse a value that can be written to memory
func parseData(data string) (uint8, error) {
	if strings.HasPrefix(data, "$") {
		data = fmt.Sprintf("0x%s", data[1:])
	}
	v, err := strconv.ParseUint(data, 0, 8)
	if err != nil {
		return 0, fmt.Errorf("value is not valid: %s", data)
	}
	return uint8(v), nil
}
