package cpu

import "github.com/retroenv/retrogolib/nes/addressing"

// Instruction is a 6502 instruction with its execution handler.
type Instruction struct {
	Name    string // lowercase mnemonic
	handler func(c *CPU, mem *Memory, op Operand)
}

// Opcode is an opcode table entry. A nil Instruction marks an unassigned opcode byte.
type Opcode struct {
	Instruction *Instruction
	Addressing  addressing.Mode
}

// OperandBytes returns the number of operand bytes that follow the given opcode byte.
// The second return value is false for unassigned opcode bytes.
func OperandBytes(opcode byte) (int, bool) {
	op := Opcodes[opcode]
	if op.Instruction == nil {
		return 0, false
	}
	return operandSizes[op.Addressing], true
}

var (
	adc = &Instruction{Name: "adc", handler: (*CPU).adc}
	and = &Instruction{Name: "and", handler: (*CPU).and}
	asl = &Instruction{Name: "asl", handler: (*CPU).asl}
	bcc = &Instruction{Name: "bcc", handler: (*CPU).bcc}
	bcs = &Instruction{Name: "bcs", handler: (*CPU).bcs}
	beq = &Instruction{Name: "beq", handler: (*CPU).beq}
	bit = &Instruction{Name: "bit", handler: (*CPU).bit}
	bmi = &Instruction{Name: "bmi", handler: (*CPU).bmi}
	bne = &Instruction{Name: "bne", handler: (*CPU).bne}
	bpl = &Instruction{Name: "bpl", handler: (*CPU).bpl}
	brk = &Instruction{Name: "brk", handler: (*CPU).brk}
	bvc = &Instruction{Name: "bvc", handler: (*CPU).bvc}
	bvs = &Instruction{Name: "bvs", handler: (*CPU).bvs}
	clc = &Instruction{Name: "clc", handler: (*CPU).clc}
	cld = &Instruction{Name: "cld", handler: (*CPU).cld}
	cli = &Instruction{Name: "cli", handler: (*CPU).cli}
	clv = &Instruction{Name: "clv", handler: (*CPU).clv}
	cmp = &Instruction{Name: "cmp", handler: (*CPU).cmp}
	cpx = &Instruction{Name: "cpx", handler: (*CPU).cpx}
	cpy = &Instruction{Name: "cpy", handler: (*CPU).cpy}
	dec = &Instruction{Name: "dec", handler: (*CPU).dec}
	dex = &Instruction{Name: "dex", handler: (*CPU).dex}
	dey = &Instruction{Name: "dey", handler: (*CPU).dey}
	eor = &Instruction{Name: "eor", handler: (*CPU).eor}
	inc = &Instruction{Name: "inc", handler: (*CPU).inc}
	inx = &Instruction{Name: "inx", handler: (*CPU).inx}
	iny = &Instruction{Name: "iny", handler: (*CPU).iny}
	jmp = &Instruction{Name: "jmp", handler: (*CPU).jmp}
	jsr = &Instruction{Name: "jsr", handler: (*CPU).jsr}
	lda = &Instruction{Name: "lda", handler: (*CPU).lda}
	ldx = &Instruction{Name: "ldx", handler: (*CPU).ldx}
	ldy = &Instruction{Name: "ldy", handler: (*CPU).ldy}
	lsr = &Instruction{Name: "lsr", handler: (*CPU).lsr}
	nop = &Instruction{Name: "nop", handler: (*CPU).nop}
	ora = &Instruction{Name: "ora", handler: (*CPU).ora}
	pha = &Instruction{Name: "pha", handler: (*CPU).pha}
	php = &Instruction{Name: "php", handler: (*CPU).php}
	pla = &Instruction{Name: "pla", handler: (*CPU).pla}
	plp = &Instruction{Name: "plp", handler: (*CPU).plp}
	rol = &Instruction{Name: "rol", handler: (*CPU).rol}
	ror = &Instruction{Name: "ror", handler: (*CPU).ror}
	rti = &Instruction{Name: "rti", handler: (*CPU).rti}
	rts = &Instruction{Name: "rts", handler: (*CPU).rts}
	sbc = &Instruction{Name: "sbc", handler: (*CPU).sbc}
	sec = &Instruction{Name: "sec", handler: (*CPU).sec}
	sed = &Instruction{Name: "sed", handler: (*CPU).sed}
	sei = &Instruction{Name: "sei", handler: (*CPU).sei}
	sta = &Instruction{Name: "sta", handler: (*CPU).sta}
	stx = &Instruction{Name: "stx", handler: (*CPU).stx}
	sty = &Instruction{Name: "sty", handler: (*CPU).sty}
	tax = &Instruction{Name: "tax", handler: (*CPU).tax}
	tay = &Instruction{Name: "tay", handler: (*CPU).tay}
	tsx = &Instruction{Name: "tsx", handler: (*CPU).tsx}
	txa = &Instruction{Name: "txa", handler: (*CPU).txa}
	txs = &Instruction{Name: "txs", handler: (*CPU).txs}
	tya = &Instruction{Name: "tya", handler: (*CPU).tya}
)

// Opcodes maps every documented opcode byte to its instruction and addressing mode.
var Opcodes = [256]Opcode{
	0x00: {Instruction: brk, Addressing: addressing.ImpliedAddressing},
	0x01: {Instruction: ora, Addressing: addressing.IndirectXAddressing},
	0x05: {Instruction: ora, Addressing: addressing.ZeroPageAddressing},
	0x06: {Instruction: asl, Addressing: addressing.ZeroPageAddressing},
	0x08: {Instruction: php, Addressing: addressing.ImpliedAddressing},
	0x09: {Instruction: ora, Addressing: addressing.ImmediateAddressing},
	0x0A: {Instruction: asl, Addressing: addressing.AccumulatorAddressing},
	0x0D: {Instruction: ora, Addressing: addressing.AbsoluteAddressing},
	0x0E: {Instruction: asl, Addressing: addressing.AbsoluteAddressing},

	0x10: {Instruction: bpl, Addressing: addressing.RelativeAddressing},
	0x11: {Instruction: ora, Addressing: addressing.IndirectYAddressing},
	0x15: {Instruction: ora, Addressing: addressing.ZeroPageXAddressing},
	0x16: {Instruction: asl, Addressing: addressing.ZeroPageXAddressing},
	0x18: {Instruction: clc, Addressing: addressing.ImpliedAddressing},
	0x19: {Instruction: ora, Addressing: addressing.AbsoluteYAddressing},
	0x1D: {Instruction: ora, Addressing: addressing.AbsoluteXAddressing},
	0x1E: {Instruction: asl, Addressing: addressing.AbsoluteXAddressing},

	0x20: {Instruction: jsr, Addressing: addressing.AbsoluteAddressing},
	0x21: {Instruction: and, Addressing: addressing.IndirectXAddressing},
	0x24: {Instruction: bit, Addressing: addressing.ZeroPageAddressing},
	0x25: {Instruction: and, Addressing: addressing.ZeroPageAddressing},
	0x26: {Instruction: rol, Addressing: addressing.ZeroPageAddressing},
	0x28: {Instruction: plp, Addressing: addressing.ImpliedAddressing},
	0x29: {Instruction: and, Addressing: addressing.ImmediateAddressing},
	0x2A: {Instruction: rol, Addressing: addressing.AccumulatorAddressing},
	0x2C: {Instruction: bit, Addressing: addressing.AbsoluteAddressing},
	0x2D: {Instruction: and, Addressing: addressing.AbsoluteAddressing},
	0x2E: {Instruction: rol, Addressing: addressing.AbsoluteAddressing},

	0x30: {Instruction: bmi, Addressing: addressing.RelativeAddressing},
	0x31: {Instruction: and, Addressing: addressing.IndirectYAddressing},
	0x35: {Instruction: and, Addressing: addressing.ZeroPageXAddressing},
	0x36: {Instruction: rol, Addressing: addressing.ZeroPageXAddressing},
	0x38: {Instruction: sec, Addressing: addressing.ImpliedAddressing},
	0x39: {Instruction: and, Addressing: addressing.AbsoluteYAddressing},
	0x3D: {Instruction: and, Addressing: addressing.AbsoluteXAddressing},
	0x3E: {Instruction: rol, Addressing: addressing.AbsoluteXAddressing},

	0x40: {Instruction: rti, Addressing: addressing.ImpliedAddressing},
	0x41: {Instruction: eor, Addressing: addressing.IndirectXAddressing},
	0x45: {Instruction: eor, Addressing: addressing.ZeroPageAddressing},
	0x46: {Instruction: lsr, Addressing: addressing.ZeroPageAddressing},
	0x48: {Instruction: pha, Addressing: addressing.ImpliedAddressing},
	0x49: {Instruction: eor, Addressing: addressing.ImmediateAddressing},
	0x4A: {Instruction: lsr, Addressing: addressing.AccumulatorAddressing},
	0x4C: {Instruction: jmp, Addressing: addressing.AbsoluteAddressing},
	0x4D: {Instruction: eor, Addressing: addressing.AbsoluteAddressing},
	0x4E: {Instruction: lsr, Addressing: addressing.AbsoluteAddressing},

	0x50: {Instruction: bvc, Addressing: addressing.RelativeAddressing},
	0x51: {Instruction: eor, Addressing: addressing.IndirectYAddressing},
	0x55: {Instruction: eor, Addressing: addressing.ZeroPageXAddressing},
	0x56: {Instruction: lsr, Addressing: addressing.ZeroPageXAddressing},
	0x58: {Instruction: cli, Addressing: addressing.ImpliedAddressing},
	0x59: {Instruction: eor, Addressing: addressing.AbsoluteYAddressing},
	0x5D: {Instruction: eor, Addressing: addressing.AbsoluteXAddressing},
	0x5E: {Instruction: lsr, Addressing: addressing.AbsoluteXAddressing},

	0x60: {Instruction: rts, Addressing: addressing.ImpliedAddressing},
	0x61: {Instruction: adc, Addressing: addressing.IndirectXAddressing},
	0x65: {Instruction: adc, Addressing: addressing.ZeroPageAddressing},
	0x66: {Instruction: ror, Addressing: addressing.ZeroPageAddressing},
	0x68: {Instruction: pla, Addressing: addressing.ImpliedAddressing},
	0x69: {Instruction: adc, Addressing: addressing.ImmediateAddressing},
	0x6A: {Instruction: ror, Addressing: addressing.AccumulatorAddressing},
	0x6C: {Instruction: jmp, Addressing: addressing.IndirectAddressing},
	0x6D: {Instruction: adc, Addressing: addressing.AbsoluteAddressing},
	0x6E: {Instruction: ror, Addressing: addressing.AbsoluteAddressing},

	0x70: {Instruction: bvs, Addressing: addressing.RelativeAddressing},
	0x71: {Instruction: adc, Addressing: addressing.IndirectYAddressing},
	0x75: {Instruction: adc, Addressing: addressing.ZeroPageXAddressing},
	0x76: {Instruction: ror, Addressing: addressing.ZeroPageXAddressing},
	0x78: {Instruction: sei, Addressing: addressing.ImpliedAddressing},
	0x79: {Instruction: adc, Addressing: addressing.AbsoluteYAddressing},
	0x7D: {Instruction: adc, Addressing: addressing.AbsoluteXAddressing},
	0x7E: {Instruction: ror, Addressing: addressing.AbsoluteXAddressing},

	0x81: {Instruction: sta, Addressing: addressing.IndirectXAddressing},
	0x84: {Instruction: sty, Addressing: addressing.ZeroPageAddressing},
	0x85: {Instruction: sta, Addressing: addressing.ZeroPageAddressing},
	0x86: {Instruction: stx, Addressing: addressing.ZeroPageAddressing},
	0x88: {Instruction: dey, Addressing: addressing.ImpliedAddressing},
	0x8A: {Instruction: txa, Addressing: addressing.ImpliedAddressing},
	0x8C: {Instruction: sty, Addressing: addressing.AbsoluteAddressing},
	0x8D: {Instruction: sta, Addressing: addressing.AbsoluteAddressing},
	0x8E: {Instruction: stx, Addressing: addressing.AbsoluteAddressing},

	0x90: {Instruction: bcc, Addressing: addressing.RelativeAddressing},
	0x91: {Instruction: sta, Addressing: addressing.IndirectYAddressing},
	0x94: {Instruction: sty, Addressing: addressing.ZeroPageXAddressing},
	0x95: {Instruction: sta, Addressing: addressing.ZeroPageXAddressing},
	0x96: {Instruction: stx, Addressing: addressing.ZeroPageYAddressing},
	0x98: {Instruction: tya, Addressing: addressing.ImpliedAddressing},
	0x99: {Instruction: sta, Addressing: addressing.AbsoluteYAddressing},
	0x9A: {Instruction: txs, Addressing: addressing.ImpliedAddressing},
	0x9D: {Instruction: sta, Addressing: addressing.AbsoluteXAddressing},

	0xA0: {Instruction: ldy, Addressing: addressing.ImmediateAddressing},
	0xA1: {Instruction: lda, Addressing: addressing.IndirectXAddressing},
	0xA2: {Instruction: ldx, Addressing: addressing.ImmediateAddressing},
	0xA4: {Instruction: ldy, Addressing: addressing.ZeroPageAddressing},
	0xA5: {Instruction: lda, Addressing: addressing.ZeroPageAddressing},
	0xA6: {Instruction: ldx, Addressing: addressing.ZeroPageAddressing},
	0xA8: {Instruction: tay, Addressing: addressing.ImpliedAddressing},
	0xA9: {Instruction: lda, Addressing: addressing.ImmediateAddressing},
	0xAA: {Instruction: tax, Addressing: addressing.ImpliedAddressing},
	0xAC: {Instruction: ldy, Addressing: addressing.AbsoluteAddressing},
	0xAD: {Instruction: lda, Addressing: addressing.AbsoluteAddressing},
	0xAE: {Instruction: ldx, Addressing: addressing.AbsoluteAddressing},

	0xB0: {Instruction: bcs, Addressing: addressing.RelativeAddressing},
	0xB1: {Instruction: lda, Addressing: addressing.IndirectYAddressing},
	0xB4: {Instruction: ldy, Addressing: addressing.ZeroPageXAddressing},
	0xB5: {Instruction: lda, Addressing: addressing.ZeroPageXAddressing},
	0xB6: {Instruction: ldx, Addressing: addressing.ZeroPageYAddressing},
	0xB8: {Instruction: clv, Addressing: addressing.ImpliedAddressing},
	0xB9: {Instruction: lda, Addressing: addressing.AbsoluteYAddressing},
	0xBA: {Instruction: tsx, Addressing: addressing.ImpliedAddressing},
	0xBC: {Instruction: ldy, Addressing: addressing.AbsoluteXAddressing},
	0xBD: {Instruction: lda, Addressing: addressing.AbsoluteXAddressing},
	0xBE: {Instruction: ldx, Addressing: addressing.AbsoluteYAddressing},

	0xC0: {Instruction: cpy, Addressing: addressing.ImmediateAddressing},
	0xC1: {Instruction: cmp, Addressing: addressing.IndirectXAddressing},
	0xC4: {Instruction: cpy, Addressing: addressing.ZeroPageAddressing},
	0xC5: {Instruction: cmp, Addressing: addressing.ZeroPageAddressing},
	0xC6: {Instruction: dec, Addressing: addressing.ZeroPageAddressing},
	0xC8: {Instruction: iny, Addressing: addressing.ImpliedAddressing},
	0xC9: {Instruction: cmp, Addressing: addressing.ImmediateAddressing},
	0xCA: {Instruction: dex, Addressing: addressing.ImpliedAddressing},
	0xCC: {Instruction: cpy, Addressing: addressing.AbsoluteAddressing},
	0xCD: {Instruction: cmp, Addressing: addressing.AbsoluteAddressing},
	0xCE: {Instruction: dec, Addressing: addressing.AbsoluteAddressing},

	0xD0: {Instruction: bne, Addressing: addressing.RelativeAddressing},
	0xD1: {Instruction: cmp, Addressing: addressing.IndirectYAddressing},
	0xD5: {Instruction: cmp, Addressing: addressing.ZeroPageXAddressing},
	0xD6: {Instruction: dec, Addressing: addressing.ZeroPageXAddressing},
	0xD8: {Instruction: cld, Addressing: addressing.ImpliedAddressing},
	0xD9: {Instruction: cmp, Addressing: addressing.AbsoluteYAddressing},
	0xDD: {Instruction: cmp, Addressing: addressing.AbsoluteXAddressing},
	0xDE: {Instruction: dec, Addressing: addressing.AbsoluteXAddressing},

	0xE0: {Instruction: cpx, Addressing: addressing.ImmediateAddressing},
	0xE1: {Instruction: sbc, Addressing: addressing.IndirectXAddressing},
	0xE4: {Instruction: cpx, Addressing: addressing.ZeroPageAddressing},
	0xE5: {Instruction: sbc, Addressing: addressing.ZeroPageAddressing},
	0xE6: {Instruction: inc, Addressing: addressing.ZeroPageAddressing},
	0xE8: {Instruction: inx, Addressing: addressing.ImpliedAddressing},
	0xE9: {Instruction: sbc, Addressing: addressing.ImmediateAddressing},
	0xEA: {Instruction: nop, Addressing: addressing.ImpliedAddressing},
	0xEC: {Instruction: cpx, Addressing: addressing.AbsoluteAddressing},
	0xED: {Instruction: sbc, Addressing: addressing.AbsoluteAddressing},
	0xEE: {Instruction: inc, Addressing: addressing.AbsoluteAddressing},

	0xF0: {Instruction: beq, Addressing: addressing.RelativeAddressing},
	0xF1: {Instruction: sbc, Addressing: addressing.IndirectYAddressing},
	0xF5: {Instruction: sbc, Addressing: addressing.ZeroPageXAddressing},
	0xF6: {Instruction: inc, Addressing: addressing.ZeroPageXAddressing},
	0xF8: {Instruction: sed, Addressing: addressing.ImpliedAddressing},
	0xF9: {Instruction: sbc, Addressing: addressing.AbsoluteYAddressing},
	0xFD: {Instruction: sbc, Addressing: addressing.AbsoluteXAddressing},
	0xFE: {Instruction: inc, Addressing: addressing.AbsoluteXAddressing},
}
