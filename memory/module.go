package memory

import "bytes"

// PageSize is the WebAssembly page size.
const PageSize = 65536

const memoryExport = "memory"

const (
	sectionMemory    = 0x05
	sectionExport    = 0x07
	exportKindMemory = 0x02
	limitsMinOnly    = 0x00
)

var wasmHeader = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
}

// pagesFor returns the smallest page count that holds size bytes.
func pagesFor(size uint32) uint32 {
	pages := uint32((uint64(size) + PageSize - 1) / PageSize)
	if pages == 0 {
		pages = 1
	}
	return pages
}

// memoryModule encodes a core module that declares one memory of pages
// pages and exports it as "memory".
func memoryModule(pages uint32) []byte {
	var mem bytes.Buffer
	writeLEB128u(&mem, 1)
	mem.WriteByte(limitsMinOnly)
	writeLEB128u(&mem, pages)

	var exp bytes.Buffer
	writeLEB128u(&exp, 1)
	writeLEB128u(&exp, uint32(len(memoryExport)))
	exp.WriteString(memoryExport)
	exp.WriteByte(exportKindMemory)
	writeLEB128u(&exp, 0)

	var b bytes.Buffer
	b.Write(wasmHeader)
	writeSection(&b, sectionMemory, mem.Bytes())
	writeSection(&b, sectionExport, exp.Bytes())
	return b.Bytes()
}

func writeSection(w *bytes.Buffer, id byte, content []byte) {
	w.WriteByte(id)
	writeLEB128u(w, uint32(len(content)))
	w.Write(content)
}

func writeLEB128u(w *bytes.Buffer, v uint32) {
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.WriteByte(b)
		if v == 0 {
			break
		}
	}
}
