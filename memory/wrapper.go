package memory

import (
	"fmt"

	"github.com/tetratelabs/wazero/api"
)

// WrapMemory wraps a wazero api.Memory as an ffnet.Memory limited to its
// current size.
func WrapMemory(mem api.Memory) *Wrapper {
	if mem == nil {
		return nil
	}
	return &Wrapper{Mem: mem, Limit: mem.Size()}
}

// Wrapper adapts wazero api.Memory to the ffnet.Memory interface. Accesses
// at or past Limit fail.
type Wrapper struct {
	Mem   api.Memory
	Limit uint32
}

func (m *Wrapper) within(offset, length uint32) bool {
	return m.Mem != nil && uint64(offset)+uint64(length) <= uint64(m.Limit)
}

// Size returns the usable size in bytes.
func (m *Wrapper) Size() uint32 {
	return m.Limit
}

// Read reads bytes from memory. The result is a view of linear memory.
func (m *Wrapper) Read(offset uint32, length uint32) ([]byte, error) {
	if !m.within(offset, length) {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	data, ok := m.Mem.Read(offset, length)
	if !ok {
		return nil, fmt.Errorf("memory read out of bounds: offset=%d, length=%d", offset, length)
	}
	return data, nil
}

// Write writes bytes to memory.
func (m *Wrapper) Write(offset uint32, data []byte) error {
	if !m.within(offset, uint32(len(data))) || !m.Mem.Write(offset, data) {
		return fmt.Errorf("memory write out of bounds: offset=%d, length=%d", offset, len(data))
	}
	return nil
}

// ReadU8 reads an unsigned 8-bit value.
func (m *Wrapper) ReadU8(offset uint32) (uint8, error) {
	if !m.within(offset, 1) {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	v, ok := m.Mem.ReadByte(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (m *Wrapper) ReadU32(offset uint32) (uint32, error) {
	if !m.within(offset, 4) {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	v, ok := m.Mem.ReadUint32Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

// ReadU64 reads an unsigned 64-bit little-endian value.
func (m *Wrapper) ReadU64(offset uint32) (uint64, error) {
	if !m.within(offset, 8) {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	v, ok := m.Mem.ReadUint64Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

// ReadF64 reads a little-endian IEEE 754 double.
func (m *Wrapper) ReadF64(offset uint32) (float64, error) {
	if !m.within(offset, 8) {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	v, ok := m.Mem.ReadFloat64Le(offset)
	if !ok {
		return 0, fmt.Errorf("memory read out of bounds: offset=%d", offset)
	}
	return v, nil
}

// WriteU8 writes an unsigned 8-bit value.
func (m *Wrapper) WriteU8(offset uint32, value uint8) error {
	if !m.within(offset, 1) || !m.Mem.WriteByte(offset, value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (m *Wrapper) WriteU32(offset uint32, value uint32) error {
	if !m.within(offset, 4) || !m.Mem.WriteUint32Le(offset, value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}

// WriteU64 writes an unsigned 64-bit little-endian value.
func (m *Wrapper) WriteU64(offset uint32, value uint64) error {
	if !m.within(offset, 8) || !m.Mem.WriteUint64Le(offset, value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}

// WriteF64 writes a little-endian IEEE 754 double.
func (m *Wrapper) WriteF64(offset uint32, value float64) error {
	if !m.within(offset, 8) || !m.Mem.WriteFloat64Le(offset, value) {
		return fmt.Errorf("memory write out of bounds: offset=%d", offset)
	}
	return nil
}
