// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

// Register is a 3-bit register field as it appears in an opcode.
type Register int

//go:generate go tool stringer -linecomment -type=Register
const (
	REG_B = Register(0) // B
	REG_C = Register(1) // C
	REG_D = Register(2) // D
	REG_E = Register(3) // E
	REG_H = Register(4) // H
	REG_L = Register(5) // L
	REG_M = Register(6) // M
	REG_A = Register(7) // A
)

// Register pair aliases of index 6. The operation decides which applies.
const (
	REG_SP  = REG_M // Stack pointer, for LXI/INX/DCX/DAD.
	REG_PSW = REG_M // Accumulator and flags, for PUSH/POP.
)

// Pair returns true if the register names a register pair (B, D, H or SP/PSW).
func (r Register) Pair() bool {
	return r >= REG_B && r <= REG_A && (r&1) == 0
}

// Cond is a branch condition, as encoded in bits 3-5 of Jcc/Ccc/Rcc.
type Cond int

//go:generate go tool stringer -linecomment -type=Cond
const (
	COND_NZ = Cond(0) // NZ
	COND_Z  = Cond(1) // Z
	COND_NC = Cond(2) // NC
	COND_C  = Cond(3) // C
	COND_PO = Cond(4) // PO
	COND_PE = Cond(5) // PE
	COND_P  = Cond(6) // P
	COND_M  = Cond(7) // M
)

// Kind is the instruction tag carried by every Operation.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	OP_NOP           = Kind(iota) // NOP
	OP_LXI                        // LXI
	OP_STAX                       // STAX
	OP_INX                        // INX
	OP_INR                        // INR
	OP_DCR                        // DCR
	OP_MVI                        // MVI
	OP_RLC                        // RLC
	OP_DAD                        // DAD
	OP_LDAX                       // LDAX
	OP_DCX                        // DCX
	OP_RRC                        // RRC
	OP_RAL                        // RAL
	OP_RAR                        // RAR
	OP_SHLD                       // SHLD
	OP_DAA                        // DAA
	OP_LHLD                       // LHLD
	OP_CMA                        // CMA
	OP_STA                        // STA
	OP_STC                        // STC
	OP_LDA                        // LDA
	OP_CMC                        // CMC
	OP_MOV                        // MOV
	OP_HLT                        // HLT
	OP_ADD                        // ADD
	OP_ADC                        // ADC
	OP_SUB                        // SUB
	OP_SBB                        // SBB
	OP_ANA                        // ANA
	OP_XRA                        // XRA
	OP_ORA                        // ORA
	OP_CMP                        // CMP
	OP_RNZ                        // RNZ
	OP_POP                        // POP
	OP_JNZ                        // JNZ
	OP_JMP                        // JMP
	OP_CNZ                        // CNZ
	OP_PUSH                       // PUSH
	OP_ADI                        // ADI
	OP_RZ                         // RZ
	OP_RET                        // RET
	OP_JZ                         // JZ
	OP_CZ                         // CZ
	OP_CALL                       // CALL
	OP_ACI                        // ACI
	OP_RNC                        // RNC
	OP_JNC                        // JNC
	OP_CNC                        // CNC
	OP_SUI                        // SUI
	OP_RC                         // RC
	OP_JC                         // JC
	OP_CC                         // CC
	OP_SBI                        // SBI
	OP_RPO                        // RPO
	OP_JPO                        // JPO
	OP_XTHL                       // XTHL
	OP_CPO                        // CPO
	OP_ANI                        // ANI
	OP_RPE                        // RPE
	OP_PCHL                       // PCHL
	OP_JPE                        // JPE
	OP_XCHG                       // XCHG
	OP_CPE                        // CPE
	OP_XRI                        // XRI
	OP_RP                         // RP
	OP_JP                         // JP
	OP_CP                         // CP
	OP_ORI                        // ORI
	OP_RM                         // RM
	OP_SPHL                       // SPHL
	OP_JM                         // JM
	OP_CM                         // CM
	OP_CPI                        // CPI
	OP_UNIMPLEMENTED              // ???
)

// Conditional branch kinds, indexed by Cond.
var (
	jumpKind   = [8]Kind{OP_JNZ, OP_JZ, OP_JNC, OP_JC, OP_JPO, OP_JPE, OP_JP, OP_JM}
	callKind   = [8]Kind{OP_CNZ, OP_CZ, OP_CNC, OP_CC, OP_CPO, OP_CPE, OP_CP, OP_CM}
	returnKind = [8]Kind{OP_RNZ, OP_RZ, OP_RNC, OP_RC, OP_RPO, OP_RPE, OP_RP, OP_RM}
)

// Cond returns the branch condition of a conditional jump, call or return.
func (k Kind) Cond() (cond Cond, ok bool) {
	for _, table := range [][8]Kind{jumpKind, callKind, returnKind} {
		for n, kind := range table {
			if kind == k {
				return Cond(n), true
			}
		}
	}
	return
}

// IsJump is true for JMP and the conditional jumps.
func (k Kind) IsJump() bool {
	return k == OP_JMP || isIn(k, jumpKind)
}

// IsCall is true for CALL and the conditional calls.
func (k Kind) IsCall() bool {
	return k == OP_CALL || isIn(k, callKind)
}

// IsReturn is true for RET and the conditional returns.
func (k Kind) IsReturn() bool {
	return k == OP_RET || isIn(k, returnKind)
}

func isIn(k Kind, table [8]Kind) bool {
	for _, kind := range table {
		if kind == k {
			return true
		}
	}
	return false
}
