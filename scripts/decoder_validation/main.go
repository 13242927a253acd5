// Validate decoder hot path - measures steady-state allocation cost of decode
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/onsdagens/riscv-instruction-parser/insts"
)

func main() {
	decoder := insts.NewDecoder()

	// One word per major opcode class
	words := []uint32{
		0x00A28293, // ADDI t0, t0, 10
		0x00C58533, // ADD a0, a1, a2
		0x00012083, // LW ra, 0(sp)
		0xFEA12E23, // SW a0, -4(sp)
		0x00B50863, // BEQ a0, a1, 16
		0x12345537, // LUI a0, 0x12345
		0x00001417, // AUIPC s0, 1
		0x008000EF, // JAL ra, 8
		0x00008067, // JALR zero, 0(ra)
		0x300312F3, // CSRRW t0, mstatus, t1
	}

	// Warm up
	for i := 0; i < 1000; i++ {
		_, _ = decoder.Decode(words[i%len(words)])
	}

	// Measure allocations across a sustained decode loop
	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 100000

	for i := 0; i < iterations; i++ {
		for _, word := range words {
			_, _ = decoder.Decode(word)
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := iterations * len(words)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decoder Validation Results:\n")
	fmt.Printf("===========================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Bytes per decode: %.1f\n", float64(allocatedBytes)/float64(totalDecodes))

	if allocations == 0 {
		fmt.Printf("\n✅ SUCCESS: Zero allocations detected!\n")
	} else if float64(allocations)/float64(totalDecodes) < 0.1 {
		fmt.Printf("\n✅ GOOD: Low allocation rate (< 0.1 per decode)\n")
	} else {
		fmt.Printf("\n⚠️  WARNING: High allocation rate detected\n")
	}
}
