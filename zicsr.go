package biscuit

// This file implements the Zicsr extension: the three CSR read-modify-write
// instructions and their five-bit-immediate variants, plus the ISA-defined
// pseudo-instructions built on top of them (spec.md §7, verified against
// the CSRRW/CSRRS/CSRRC test vectors in spec.md §8).

func (a *Assembler) csr(funct3 uint32, rd GPR, csr CSR, rs1Field uint32) {
	a.emitFixed32(packCSR(csr, rs1Field, funct3, uint32(rd), opSystem))
}

func (a *Assembler) CSRRW(rd GPR, csr CSR, rs1 GPR)   { a.csr(0b001, rd, csr, uint32(rs1)) }
func (a *Assembler) CSRRS(rd GPR, csr CSR, rs1 GPR)   { a.csr(0b010, rd, csr, uint32(rs1)) }
func (a *Assembler) CSRRC(rd GPR, csr CSR, rs1 GPR)   { a.csr(0b011, rd, csr, uint32(rs1)) }
func (a *Assembler) CSRRWI(rd GPR, csr CSR, imm uint32) { a.csr(0b101, rd, csr, imm) }
func (a *Assembler) CSRRSI(rd GPR, csr CSR, imm uint32) { a.csr(0b110, rd, csr, imm) }
func (a *Assembler) CSRRCI(rd GPR, csr CSR, imm uint32) { a.csr(0b111, rd, csr, imm) }

// CSRR reads csr into rd, discarding any write (CSRRS rd,csr,x0).
func (a *Assembler) CSRR(rd GPR, csr CSR) { a.CSRRS(rd, csr, X0) }

// CSRW writes rs1 into csr, discarding the CSR's prior value (CSRRW
// x0,csr,rs1). SPEC_FULL.md §11.1: this is the primary spelling; CSWR
// below is kept only as a deprecated alias for a historical misspelling.
func (a *Assembler) CSRW(csr CSR, rs1 GPR) { a.CSRRW(X0, csr, rs1) }

// CSWR is a deprecated alias for CSRW, kept for source compatibility with
// callers that inherited the transposed spelling.
func (a *Assembler) CSWR(csr CSR, rs1 GPR) { a.CSRW(csr, rs1) }

// CSRS sets the bits in rs1 within csr, discarding the read (CSRRS
// x0,csr,rs1).
func (a *Assembler) CSRS(csr CSR, rs1 GPR) { a.CSRRS(X0, csr, rs1) }

// CSRC clears the bits in rs1 within csr, discarding the read.
func (a *Assembler) CSRC(csr CSR, rs1 GPR) { a.CSRRC(X0, csr, rs1) }

func (a *Assembler) CSRWI(csr CSR, imm uint32) { a.CSRRWI(X0, csr, imm) }
func (a *Assembler) CSRSI(csr CSR, imm uint32) { a.CSRRSI(X0, csr, imm) }
func (a *Assembler) CSRCI(csr CSR, imm uint32) { a.CSRRCI(X0, csr, imm) }

// FRCSR reads the fcsr into rd.
func (a *Assembler) FRCSR(rd GPR) { a.CSRR(rd, FCSR) }

// FSCSR writes rs1 into fcsr, returning its prior value in rd.
func (a *Assembler) FSCSR(rd, rs1 GPR) { a.CSRRW(rd, FCSR, rs1) }

// FRRM reads the dynamic rounding mode into rd.
func (a *Assembler) FRRM(rd GPR) { a.CSRR(rd, FRM) }

// FSRM writes rs1 into frm, returning its prior value in rd.
func (a *Assembler) FSRM(rd, rs1 GPR) { a.CSRRW(rd, FRM, rs1) }

// FSRMI writes the 5-bit immediate imm into frm, returning its prior
// value in rd.
func (a *Assembler) FSRMI(rd GPR, imm uint32) { a.CSRRWI(rd, FRM, imm) }

// FRFLAGS reads the accrued exception flags into rd.
func (a *Assembler) FRFLAGS(rd GPR) { a.CSRR(rd, FFlags) }

// FSFLAGS writes rs1 into fflags, returning its prior value in rd.
func (a *Assembler) FSFLAGS(rd, rs1 GPR) { a.CSRRW(rd, FFlags, rs1) }

// FSFLAGSI writes the 5-bit immediate imm into fflags, returning its
// prior value in rd.
func (a *Assembler) FSFLAGSI(rd GPR, imm uint32) { a.CSRRWI(rd, FFlags, imm) }

func (a *Assembler) RDCYCLE(rd GPR)    { a.CSRR(rd, Cycle) }
func (a *Assembler) RDTIME(rd GPR)     { a.CSRR(rd, Time) }
func (a *Assembler) RDINSTRET(rd GPR)  { a.CSRR(rd, InstRet) }
func (a *Assembler) RDCYCLEH(rd GPR)   { a.CSRR(rd, CycleH) }
func (a *Assembler) RDTIMEH(rd GPR)    { a.CSRR(rd, TimeH) }
func (a *Assembler) RDINSTRETH(rd GPR) { a.CSRR(rd, InstRetH) }
