package module

// Variable is the side-table record for any id produced by OpVariable or
// one of the constant / specialization-constant opcodes (see
// IsConstantOrVariableOpcode). Module-scope OpVariable instructions are
// the ones the Pipeline Reflector cares about; constants are kept in the
// same table because the original decoder resolves array lengths
// (OpTypeArray's length operand) through this same side table, and
// mirroring that keeps id resolution uniform regardless of which kind of
// instruction produced the id.
type Variable struct {
	Instruction IdInstruction
}
