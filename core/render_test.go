package core_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/chism/core"
	"github.com/sarchlab/chism/instr"
)

func render(word uint16) string {
	return core.Render(instr.Decode(word))
}

var _ = Describe("Render", func() {
	DescribeTable("known words",
		func(word int, expected string) {
			Expect(render(uint16(word))).To(Equal(expected))
		},
		Entry("CLS", 0x00E0, "CLS"),
		Entry("RET", 0x00EE, "RET"),
		Entry("SYS", 0x0123, "SYS   #0123"),
		Entry("SYS zero", 0x0000, "SYS   #0000"),
		Entry("JP", 0x1234, "JP    #0234"),
		Entry("CALL", 0x2FFF, "CALL  #0FFF"),
		Entry("SE byte", 0x3A7F, "SE    V10, #7F"),
		Entry("SNE byte", 0x4001, "SNE   V0, #01"),
		Entry("SE register renders as SNE", 0x5120, "SNE   V1, V2"),
		Entry("LD byte", 0x6A05, "LD    V10, #05"),
		Entry("ADD byte", 0x7FFF, "ADD   V15, #FF"),
		Entry("LD register", 0x8120, "LD    V1, V2"),
		Entry("OR", 0x8121, "OR    V1, V2"),
		Entry("AND", 0x8122, "AND   V1, V2"),
		Entry("XOR", 0x8123, "XOR   V1, V2"),
		Entry("ADD register", 0x8124, "ADD   V1, V2"),
		Entry("SUB", 0x8125, "SUB   V1, V2"),
		Entry("SHR", 0x8016, "SHR   V0{, V1}"),
		Entry("SUBN", 0x8127, "SUBN  V1, V2"),
		Entry("SHL", 0x8EFE, "SHL   V14{, V15}"),
		Entry("SNE register", 0x9AB0, "SNE   V10, V11"),
		Entry("LD I", 0xA2F0, "LD    I, #02F0"),
		Entry("JP V0", 0xB123, "JP    V0, #0123"),
		Entry("RND prints x in hex", 0xCA0F, "RND   V0A, #0F"),
		Entry("DRW pads the nibble", 0xD125, "DRW   V1, V2, #05"),
		Entry("SKP", 0xE39E, "SKP   V3"),
		Entry("SKNP", 0xE3A1, "SKNP  V3"),
		Entry("LD Vx, DT", 0xF107, "LD    V1, DT"),
		Entry("LD Vx, K", 0xF10A, "LD    V1, K"),
		Entry("LD DT, Vx", 0xF115, "LD    DT, V1"),
		Entry("LD ST, Vx", 0xF118, "LD    ST, V1"),
		Entry("ADD I, Vx", 0xF11E, "ADD   I, V1"),
		Entry("LD F, Vx", 0xF129, "LD    F, V1"),
		Entry("LD B, Vx", 0xF133, "LD    B, V1"),
		Entry("LD [I], Vx", 0xF155, "LD    [I], V1"),
		Entry("LD Vx, [I]", 0xF165, "LD    V1, [I]"),
	)

	DescribeTable("undefined words",
		func(word int) {
			Expect(render(uint16(word))).To(Equal(core.Unknown))
		},
		Entry("ALU 8", 0x8018),
		Entry("ALU 9", 0x8019),
		Entry("ALU F", 0x801F),
		Entry("key 00", 0xE100),
		Entry("key 9F", 0xE19F),
		Entry("misc 00", 0xF000),
		Entry("misc 66", 0xF166),
	)

	It("should render every word to non-empty text", func() {
		for w := 0; w <= 0xFFFF; w++ {
			Expect(render(uint16(w))).NotTo(BeEmpty())
		}
	})

	It("should give the same text on repeated calls", func() {
		for w := 0; w <= 0xFFFF; w += 7 {
			in := instr.Decode(uint16(w))
			Expect(core.Render(in)).To(Equal(core.Render(in)))
		}
	})

	It("should only leave classes 8, E and F undefined", func() {
		for w := 0; w <= 0xFFFF; w++ {
			in := instr.Decode(uint16(w))
			if core.Render(in) != core.Unknown {
				continue
			}
			Expect(in.Class).To(BeElementOf(
				instr.ClassALU, instr.ClassKey, instr.ClassMisc))
		}
	})

	It("should align operands at the same column", func() {
		for _, w := range []uint16{0x1234, 0x2345, 0x8124, 0xF165, 0xD125} {
			Expect(render(w)[6]).NotTo(Equal(byte(' ')))
			Expect(render(w)[5]).To(Equal(byte(' ')))
		}
	})
})

var _ = Describe("ISA", func() {
	It("should define 35 opcodes", func() {
		Expect(core.Opcodes()).To(HaveLen(35))
	})

	It("should identify each opcode from its own pattern", func() {
		seen := map[core.Opcode]bool{}
		for w := 0; w <= 0xFFFF; w++ {
			seen[core.Identify(instr.Decode(uint16(w)))] = true
		}
		for _, op := range core.Opcodes() {
			Expect(seen).To(HaveKey(op), op.String())
		}
	})

	It("should flag the two rendering quirks", func() {
		var quirks []string
		for _, op := range core.Opcodes() {
			if op.Info().Quirk != "" {
				quirks = append(quirks, op.String())
			}
		}
		Expect(quirks).To(ConsistOf("5xy0", "Cxkk"))
	})

	It("should fall back to the unknown entry out of range", func() {
		Expect(core.Opcode(-1).Info().Name).To(Equal(core.Unknown))
		Expect(core.Opcode(1000).String()).To(Equal("????"))
	})
})
